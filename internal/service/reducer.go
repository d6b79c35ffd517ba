package service

import (
	"log/slog"
	"math"
	"time"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

// autoShiftPattern maps weekday (Sunday=0) to the default shift of the
// rotation: Sun/Mon B, Tue/Wed A, Thu/Fri C, Sat OFF.
var autoShiftPattern = [7]entity.ShiftType{
	entity.ShiftB,
	entity.ShiftB,
	entity.ShiftA,
	entity.ShiftA,
	entity.ShiftC,
	entity.ShiftC,
	entity.ShiftOff,
}

// AutoShift returns the rotation's default shift for a date. It only seeds
// first-run state and fresh capture buffers; it never overrides a persisted
// user selection.
func AutoShift(t time.Time) entity.ShiftType {
	return autoShiftPattern[int(t.Weekday())]
}

// InitialState builds first-run defaults: empty logs, shift inferred from the
// rotation calendar, stock settings.
func InitialState(now time.Time) *entity.AppState {
	return &entity.AppState{
		Logs:           []entity.DailyLog{},
		TrainingLogs:   []entity.TrainingLog{},
		CompletedTasks: map[string][]int{},
		CurrentShift:   AutoShift(now),
		Settings:       entity.DefaultSettings(),
	}
}

// CompletionRate reports completed schedule items as a whole percent in
// [0,100]. An empty schedule rates 0 rather than dividing by zero. Switching
// to a shorter shift can leave more completed indices than schedule items for
// the day, so the rate caps at 100.
func CompletionRate(completed []int, schedule []entity.ScheduleItem) int {
	if len(schedule) == 0 {
		return 0
	}
	rate := int(math.Round(100 * float64(len(completed)) / float64(len(schedule))))
	if rate > 100 {
		return 100
	}
	return rate
}

// Reduce applies one action and returns the next state. It is pure and total:
// inputs are never mutated and every action yields a state. A nil action is a
// logged no-op.
func Reduce(state *entity.AppState, action Action) *entity.AppState {
	switch a := action.(type) {
	case UpdateShift:
		next := state.Clone()
		next.CurrentShift = a.Shift
		return next
	case ToggleTask:
		next := state.Clone()
		current := next.CompletedTasks[a.Date]
		found := false
		filtered := make([]int, 0, len(current))
		for _, idx := range current {
			if idx == a.Index {
				found = true
				continue
			}
			filtered = append(filtered, idx)
		}
		if !found {
			filtered = append(filtered, a.Index)
		}
		next.CompletedTasks[a.Date] = filtered
		return next
	case SaveLog:
		next := state.Clone()
		kept := make([]entity.DailyLog, 0, len(next.Logs)+1)
		for _, l := range next.Logs {
			if l.Date != a.Log.Date {
				kept = append(kept, l)
			}
		}
		next.Logs = append(kept, a.Log)
		return next
	case LogWorkout:
		next := state.Clone()
		next.TrainingLogs = append(next.TrainingLogs, a.Log)
		return next
	case UpdateGlow:
		next := state.Clone()
		next.Settings.ThemeIntensity = a.Value
		return next
	case UpdateTimeFormat:
		next := state.Clone()
		next.Settings.TimeFormat = a.Format
		return next
	case Reset:
		return InitialState(a.At)
	case Import:
		return a.State.Clone()
	default:
		slog.Warn("ignoring unrecognized action", slog.Any("action", action))
		return state
	}
}
