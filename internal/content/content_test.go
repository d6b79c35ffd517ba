package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manojv472/Shift-protocol/internal/content"
	"github.com/manojv472/Shift-protocol/pkg/entity"
)

func TestScheduleTemplates(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc  string
		Shift entity.ShiftType
		Items int
		First string
	}{
		{Desc: "shift A", Shift: entity.ShiftA, Items: 15, First: "Wake"},
		{Desc: "shift B", Shift: entity.ShiftB, Items: 15, First: "Wake + Light"},
		{Desc: "shift C", Shift: entity.ShiftC, Items: 14, First: "Wake (Day 1)"},
		{Desc: "off day", Shift: entity.ShiftOff, Items: 12, First: "Return from Night Shift"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			schedule := content.Schedule(tc.Shift)
			require.Len(t, schedule, tc.Items)
			assert.Equal(t, tc.First, schedule[0].Activity)
			for _, item := range schedule {
				assert.NotEmpty(t, item.Time)
				assert.NotEmpty(t, item.Activity)
			}
		})
	}
}

func TestScheduleUnknownShift(t *testing.T) {
	t.Parallel()
	assert.Empty(t, content.Schedule(entity.ShiftType("D")))
}

func TestWorkoutLookup(t *testing.T) {
	t.Parallel()
	workout, ok := content.Workout("upperA")
	require.True(t, ok)
	assert.Equal(t, "Home Upper A (Strength)", workout.Name)
	require.Len(t, workout.Exercises, 4)
	sets := make([]int, 0, 4)
	for _, ex := range workout.Exercises {
		sets = append(sets, ex.Sets)
	}
	assert.Equal(t, []int{4, 4, 3, 3}, sets)
	assert.Equal(t, "120s", workout.Exercises[0].Rest)

	_, ok = content.Workout("nosuch")
	assert.False(t, ok)
}

func TestWorkoutsOrder(t *testing.T) {
	t.Parallel()
	workouts := content.Workouts()
	require.Len(t, workouts, 3)
	ids := []string{workouts[0].ID, workouts[1].ID, workouts[2].ID}
	assert.Equal(t, []string{"upperA", "lowerA", "upperB"}, ids, "catalog keeps authoring order")
}

func TestWarmupAndLibrary(t *testing.T) {
	t.Parallel()
	assert.Len(t, content.WarmupSteps(), 6)

	blocks := content.ConditioningBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, "DB Thrusters", blocks[0].Name)

	sections := content.LibrarySections()
	require.Len(t, sections, 2)
	assert.Equal(t, "global-rules", sections[0].ID)
	assert.Contains(t, sections[0].Content, "Caffeine Cutoffs")
	assert.Equal(t, "training-rules", sections[1].ID)
	assert.Contains(t, sections[1].Content, "Progressive overload")
}
