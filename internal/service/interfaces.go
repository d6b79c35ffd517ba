package service

import (
	"context"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

type StateServiceI interface {
	// Current aggregate; read-only for callers
	State() *entity.AppState
	// Today's calendar-date key
	Today() string
	// Applies one action, then persists
	Dispatch(ctx context.Context, action Action) *entity.AppState
	// Flips completion of a schedule item for today
	ToggleTask(ctx context.Context, index int) *entity.AppState
	// Destructive factory reset
	Reset(ctx context.Context) *entity.AppState
	// Validates and installs an external snapshot document
	ImportSnapshot(ctx context.Context, data []byte) error
}

type CaptureServiceI interface {
	// Seeds the scratch buffer from today's log or defaults
	Begin() *entity.DailyLog
	Buffer() *entity.DailyLog
	SetSleepHours(v float64)
	SetSleepQuality(v int)
	SetEnergy(v int)
	SetMood(v int)
	ToggleProteinHit()
	ToggleHydration()
	ToggleCaffeineCutoff()
	ToggleNoAlcohol()
	ToggleNoNicotine()
	ToggleCleanPMO()
	// Upserts the buffer into state and ends the workflow
	Commit(ctx context.Context)
	// Discards the buffer without persisting
	Abandon()
}

type TrainingServiceI interface {
	Active() bool
	Session() *TrainingSession
	// Idle->Active; unknown workout ids leave the service Idle
	Start(workoutID string) error
	UpdateSetWeight(exercise, set int, weight float64)
	UpdateSetReps(exercise, set int, reps int)
	ToggleSetCompletion(exercise, set int)
	RestRemaining() int
	// 1 Hz countdown step
	TickRest() int
	// Commits the buffer as a TrainingLog and returns to Idle
	Finish(ctx context.Context) (*entity.TrainingLog, error)
	// Discards the session without logging
	Cancel()
}
