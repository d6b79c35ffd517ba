package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/manojv472/Shift-protocol/internal/content"
	errorvalues "github.com/manojv472/Shift-protocol/internal/error_values"
	"github.com/manojv472/Shift-protocol/pkg/entity"
)

// DefaultRestSeconds is used when an exercise's rest field doesn't parse.
const DefaultRestSeconds = 90

// TrainingSession is the in-memory progress buffer of an active workout.
type TrainingSession struct {
	WorkoutID string
	StartedAt time.Time
	Progress  []entity.ExerciseProgress
}

// TrainingService is a two-state machine: Idle (no session) and Active. The
// progress buffer and the shared rest countdown live outside the aggregate
// until Finish commits a TrainingLog.
type TrainingService struct {
	states *StateService
	newID  func() string

	session *TrainingSession
	rest    int
}

func NewTrainingService(states *StateService) *TrainingService {
	if states == nil {
		log.Fatal("on training service provided nil state service")
	}
	return &TrainingService{
		states: states,
		newID:  func() string { return uuid.NewString() },
	}
}

func (serv *TrainingService) Active() bool {
	return serv.session != nil
}

func (serv *TrainingService) Session() *TrainingSession {
	return serv.session
}

// Start transitions Idle->Active, sizing one set grid per catalog exercise.
// An unknown workout id leaves the service Idle.
func (serv *TrainingService) Start(workoutID string) error {
	if serv.session != nil {
		return errorvalues.ErrSessionInProgress
	}
	workout, ok := content.Workout(workoutID)
	if !ok {
		return errorvalues.ErrUnknownWorkout
	}
	progress := make([]entity.ExerciseProgress, len(workout.Exercises))
	for i, ex := range workout.Exercises {
		progress[i] = entity.ExerciseProgress{
			ExerciseID: ex.ID,
			Sets:       make([]entity.SetEntry, ex.Sets),
		}
	}
	serv.session = &TrainingSession{
		WorkoutID: workoutID,
		StartedAt: serv.states.now(),
		Progress:  progress,
	}
	return nil
}

// UpdateSetWeight writes a weight into the buffer. Out-of-range indices and
// negative values are no-ops; a failed numeric parse upstream arrives as 0.
func (serv *TrainingService) UpdateSetWeight(exercise, set int, weight float64) {
	entry := serv.setEntry(exercise, set)
	if entry == nil || weight < 0 {
		return
	}
	entry.Weight = weight
}

func (serv *TrainingService) UpdateSetReps(exercise, set int, reps int) {
	entry := serv.setEntry(exercise, set)
	if entry == nil || reps < 0 {
		return
	}
	entry.Reps = reps
}

// ToggleSetCompletion flips a set's completed flag. Completing a set arms the
// shared rest countdown from the exercise's prescribed rest; re-arming while
// running replaces the prior countdown.
func (serv *TrainingService) ToggleSetCompletion(exercise, set int) {
	entry := serv.setEntry(exercise, set)
	if entry == nil {
		return
	}
	entry.Completed = !entry.Completed
	if entry.Completed {
		serv.rest = serv.restSecondsFor(exercise)
	}
}

// RestRemaining reports the countdown's seconds left; 0 means not armed.
func (serv *TrainingService) RestRemaining() int {
	return serv.rest
}

// TickRest advances the 1 Hz countdown and reports the remaining seconds.
// It self-clears at zero; ticking an unarmed countdown is a no-op.
func (serv *TrainingService) TickRest() int {
	if serv.rest > 0 {
		serv.rest--
	}
	return serv.rest
}

// Finish commits the buffer (incomplete sets included) as an immutable
// TrainingLog and returns to Idle.
func (serv *TrainingService) Finish(ctx context.Context) (*entity.TrainingLog, error) {
	if serv.session == nil {
		return nil, errorvalues.ErrNoActiveSession
	}
	logEntry := entity.TrainingLog{
		ID:        serv.newID(),
		Date:      serv.states.Today(),
		WorkoutID: serv.session.WorkoutID,
		Exercises: serv.session.Progress,
	}
	serv.states.Dispatch(ctx, LogWorkout{Log: logEntry})
	serv.teardown()
	return &logEntry, nil
}

// Cancel discards the session without logging anything.
func (serv *TrainingService) Cancel() {
	serv.teardown()
}

func (serv *TrainingService) teardown() {
	serv.session = nil
	serv.rest = 0
}

func (serv *TrainingService) setEntry(exercise, set int) *entity.SetEntry {
	if serv.session == nil {
		return nil
	}
	if exercise < 0 || exercise >= len(serv.session.Progress) {
		return nil
	}
	sets := serv.session.Progress[exercise].Sets
	if set < 0 || set >= len(sets) {
		return nil
	}
	return &sets[set]
}

func (serv *TrainingService) restSecondsFor(exercise int) int {
	workout, ok := content.Workout(serv.session.WorkoutID)
	if !ok || exercise >= len(workout.Exercises) {
		return DefaultRestSeconds
	}
	return ParseRestSeconds(workout.Exercises[exercise].Rest)
}

// ParseRestSeconds reads the leading integer of a rest string like "120s".
// Unparseable or zero values fall back to the 90s default.
func ParseRestSeconds(rest string) int {
	n := 0
	parsed := false
	for _, r := range rest {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		parsed = true
	}
	if !parsed || n == 0 {
		return DefaultRestSeconds
	}
	return n
}
