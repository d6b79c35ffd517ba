package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/manojv472/Shift-protocol/internal/error_values"
	"github.com/manojv472/Shift-protocol/internal/service"
)

func newTrainingFixture() (*service.TrainingService, *service.StateService) {
	states := service.NewStateServiceWithClock(&fakeSnapshotRepo{}, fixedClock)
	return service.NewTrainingService(states), states
}

func TestStartWorkout(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc      string
		WorkoutID string
		Error     error
		SetCounts []int
	}{
		{Desc: "upperA sizes grids from catalog", WorkoutID: "upperA", SetCounts: []int{4, 4, 3, 3}},
		{Desc: "lowerA sizes grids from catalog", WorkoutID: "lowerA", SetCounts: []int{4, 3, 3, 4}},
		{Desc: "unknown id stays idle", WorkoutID: "legs9000", Error: errorvalues.ErrUnknownWorkout},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			training, _ := newTrainingFixture()
			err := training.Start(tc.WorkoutID)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.False(t, training.Active())
				return
			}
			require.NoError(t, err)
			require.True(t, training.Active())
			session := training.Session()
			require.Len(t, session.Progress, len(tc.SetCounts))
			for i, want := range tc.SetCounts {
				assert.Len(t, session.Progress[i].Sets, want)
				for _, set := range session.Progress[i].Sets {
					assert.Zero(t, set.Weight)
					assert.Zero(t, set.Reps)
					assert.False(t, set.Completed)
				}
			}
		})
	}
}

func TestStartWhileActive(t *testing.T) {
	t.Parallel()
	training, _ := newTrainingFixture()
	require.NoError(t, training.Start("upperA"))
	assert.ErrorIs(t, training.Start("lowerA"), errorvalues.ErrSessionInProgress)
}

func TestUpdateSetFields(t *testing.T) {
	t.Parallel()
	training, _ := newTrainingFixture()
	require.NoError(t, training.Start("upperA"))

	training.UpdateSetWeight(0, 0, 42.5)
	training.UpdateSetReps(0, 0, 8)
	set := training.Session().Progress[0].Sets[0]
	assert.Equal(t, 42.5, set.Weight)
	assert.Equal(t, 8, set.Reps)

	// Out-of-range indices and negative values are no-ops.
	training.UpdateSetWeight(9, 0, 10)
	training.UpdateSetReps(0, 9, 10)
	training.UpdateSetWeight(0, 0, -1)
	training.UpdateSetReps(0, 0, -1)
	set = training.Session().Progress[0].Sets[0]
	assert.Equal(t, 42.5, set.Weight)
	assert.Equal(t, 8, set.Reps)
}

func TestToggleSetArmsRestCountdown(t *testing.T) {
	t.Parallel()
	training, _ := newTrainingFixture()
	require.NoError(t, training.Start("upperA"))

	training.ToggleSetCompletion(0, 0)
	assert.True(t, training.Session().Progress[0].Sets[0].Completed)
	assert.Equal(t, 120, training.RestRemaining(), "u1 prescribes 120s rest")

	// Re-arming replaces the running countdown; no queueing.
	training.TickRest()
	training.ToggleSetCompletion(1, 0)
	assert.Equal(t, 90, training.RestRemaining(), "u2 prescribes 90s rest")

	// Un-completing does not arm.
	training.ToggleSetCompletion(1, 0)
	assert.False(t, training.Session().Progress[1].Sets[0].Completed)
	assert.Equal(t, 90, training.RestRemaining())
}

func TestTickRestSelfClears(t *testing.T) {
	t.Parallel()
	training, _ := newTrainingFixture()
	require.NoError(t, training.Start("upperA"))
	training.ToggleSetCompletion(3, 0) // u4: 60s

	for i := 59; i >= 0; i-- {
		assert.Equal(t, i, training.TickRest())
	}
	assert.Zero(t, training.TickRest(), "ticking an expired countdown stays at zero")
}

func TestFinishCommitsTrainingLog(t *testing.T) {
	t.Parallel()
	training, states := newTrainingFixture()
	require.NoError(t, training.Start("upperA"))
	training.UpdateSetWeight(0, 0, 60)
	training.UpdateSetReps(0, 0, 6)
	training.ToggleSetCompletion(0, 0)

	logEntry, err := training.Finish(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, logEntry.ID)
	assert.Equal(t, "2024-05-01", logEntry.Date)
	assert.Equal(t, "upperA", logEntry.WorkoutID)
	// Incomplete sets are kept; finishing doesn't require completion.
	assert.False(t, logEntry.Exercises[0].Sets[1].Completed)

	assert.False(t, training.Active())
	assert.Zero(t, training.RestRemaining(), "teardown clears the countdown")
	require.Len(t, states.State().TrainingLogs, 1)
	assert.Equal(t, *logEntry, states.State().TrainingLogs[0])

	// Every finished session appends; ids stay unique.
	require.NoError(t, training.Start("upperA"))
	second, err := training.Finish(context.Background())
	require.NoError(t, err)
	require.Len(t, states.State().TrainingLogs, 2)
	assert.NotEqual(t, logEntry.ID, second.ID)
}

func TestFinishWithoutSession(t *testing.T) {
	t.Parallel()
	training, _ := newTrainingFixture()
	_, err := training.Finish(context.Background())
	assert.ErrorIs(t, err, errorvalues.ErrNoActiveSession)
}

func TestCancelDiscardsSession(t *testing.T) {
	t.Parallel()
	training, states := newTrainingFixture()
	require.NoError(t, training.Start("upperB"))
	training.ToggleSetCompletion(0, 0)

	training.Cancel()

	assert.False(t, training.Active())
	assert.Zero(t, training.RestRemaining())
	assert.Empty(t, states.State().TrainingLogs, "cancel never logs")
}

func TestParseRestSeconds(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc    string
		Rest    string
		Seconds int
	}{
		{Desc: "plain seconds suffix", Rest: "120s", Seconds: 120},
		{Desc: "bare number", Rest: "45", Seconds: 45},
		{Desc: "unparseable falls back", Rest: "as needed", Seconds: 90},
		{Desc: "empty falls back", Rest: "", Seconds: 90},
		{Desc: "zero falls back", Rest: "0s", Seconds: 90},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Seconds, service.ParseRestSeconds(tc.Rest))
		})
	}
}
