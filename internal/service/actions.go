package service

import (
	"time"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

// Action is a closed set of state transitions. Earlier releases dispatched on
// an open string tag with an untyped payload; the sealed variant type makes a
// mistyped action unrepresentable.
type Action interface {
	isAction()
}

// UpdateShift sets the active shift. Completed tasks and logs are untouched.
type UpdateShift struct {
	Shift entity.ShiftType
}

// ToggleTask flips schedule-item completion for a date. Carrying the date keeps
// the reducer a pure function; StateService fills in today for UI callers.
type ToggleTask struct {
	Date  string
	Index int
}

// SaveLog upserts a daily log by date.
type SaveLog struct {
	Log entity.DailyLog
}

// LogWorkout appends a training log unconditionally.
type LogWorkout struct {
	Log entity.TrainingLog
}

// UpdateGlow sets the theme intensity. The value is not clamped here; both
// input surfaces (the bounded slider and validated import) stay within 0-100.
type UpdateGlow struct {
	Value int
}

// UpdateTimeFormat switches between 12h and 24h schedule rendering.
type UpdateTimeFormat struct {
	Format entity.TimeFormat
}

// Reset discards everything and returns to first-run defaults as of At.
type Reset struct {
	At time.Time
}

// Import installs a snapshot verbatim. Validation happens at the boundary
// (see ValidateSnapshot) before this action is ever dispatched.
type Import struct {
	State entity.AppState
}

func (UpdateShift) isAction()      {}
func (ToggleTask) isAction()       {}
func (SaveLog) isAction()          {}
func (LogWorkout) isAction()       {}
func (UpdateGlow) isAction()       {}
func (UpdateTimeFormat) isAction() {}
func (Reset) isAction()            {}
func (Import) isAction()           {}
