package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manojv472/Shift-protocol/internal/service"
	"github.com/manojv472/Shift-protocol/pkg/entity"
)

func newCaptureFixture() (*service.CaptureService, *service.StateService, *fakeSnapshotRepo) {
	repo := &fakeSnapshotRepo{}
	states := service.NewStateServiceWithClock(repo, fixedClock)
	return service.NewCaptureService(states), states, repo
}

func TestCaptureBeginSeedsDefaults(t *testing.T) {
	t.Parallel()
	capture, _, _ := newCaptureFixture()

	buf := capture.Begin()
	require.NotNil(t, buf)
	assert.Equal(t, "2024-05-01", buf.Date)
	assert.Equal(t, entity.ShiftA, buf.Shift, "fresh buffer takes the rotation's shift for today")
	assert.Zero(t, buf.SleepHours)
	assert.Equal(t, 7, buf.SleepQuality)
	assert.Equal(t, 7, buf.Energy)
	assert.Equal(t, 7, buf.Mood)
	assert.False(t, buf.ProteinHit)
	assert.False(t, buf.Hydration)
	assert.False(t, buf.CaffeineCutoff)
	assert.Equal(t, entity.HabitFlags{NoAlcohol: true, NoNicotine: true, CleanPMO: true}, buf.Habits)
}

func TestCaptureBeginSeedsFromExistingLog(t *testing.T) {
	t.Parallel()
	capture, states, _ := newCaptureFixture()
	existing := entity.DailyLog{
		Date: "2024-05-01", Shift: entity.ShiftB,
		SleepHours: 6.5, SleepQuality: 4, Energy: 5, Mood: 6,
		ProteinHit: true,
		Habits:     entity.HabitFlags{NoAlcohol: true, NoNicotine: true, CleanPMO: true},
	}
	states.Dispatch(context.Background(), service.SaveLog{Log: existing})

	buf := capture.Begin()
	require.NotNil(t, buf)
	assert.Equal(t, existing, *buf)

	// Buffer edits don't leak into state before commit.
	capture.SetEnergy(9)
	assert.Equal(t, 5, states.State().Logs[0].Energy)
}

func TestCaptureCommitUpserts(t *testing.T) {
	t.Parallel()
	capture, states, _ := newCaptureFixture()
	ctx := context.Background()

	capture.Begin()
	capture.SetSleepHours(7.5)
	capture.SetMood(9)
	capture.ToggleHydration()
	capture.Commit(ctx)

	require.Len(t, states.State().Logs, 1)
	saved := states.State().Logs[0]
	assert.Equal(t, 7.5, saved.SleepHours)
	assert.Equal(t, 9, saved.Mood)
	assert.True(t, saved.Hydration)
	assert.Nil(t, capture.Buffer(), "commit ends the workflow")

	// A second capture for the same date replaces, never duplicates.
	capture.Begin()
	capture.SetMood(2)
	capture.Commit(ctx)
	require.Len(t, states.State().Logs, 1)
	assert.Equal(t, 2, states.State().Logs[0].Mood)
}

func TestCaptureAbandonDiscardsBuffer(t *testing.T) {
	t.Parallel()
	capture, states, _ := newCaptureFixture()

	capture.Begin()
	capture.SetEnergy(1)
	capture.ToggleNoAlcohol()
	capture.Abandon()

	assert.Nil(t, capture.Buffer())
	assert.Empty(t, states.State().Logs, "abandon never writes")

	// Re-entering re-seeds from defaults, not from the abandoned buffer.
	buf := capture.Begin()
	assert.Equal(t, 7, buf.Energy)
	assert.True(t, buf.Habits.NoAlcohol)
}

func TestCaptureFieldCoercion(t *testing.T) {
	t.Parallel()
	capture, _, _ := newCaptureFixture()
	capture.Begin()

	// Mutators outside a workflow are no-ops rather than panics.
	capture.Abandon()
	capture.SetSleepHours(8)
	capture.ToggleProteinHit()
	assert.Nil(t, capture.Buffer())

	buf := capture.Begin()
	capture.SetSleepHours(-2)
	assert.Zero(t, buf.SleepHours, "negative input coerces to zero")
	capture.SetSleepQuality(0)
	assert.Equal(t, 1, buf.SleepQuality)
	capture.SetEnergy(42)
	assert.Equal(t, 10, buf.Energy)
}
