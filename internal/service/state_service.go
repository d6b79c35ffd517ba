package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/manojv472/Shift-protocol/internal/error_values"
	"github.com/manojv472/Shift-protocol/internal/repository"
	"github.com/manojv472/Shift-protocol/pkg/entity"
	"github.com/manojv472/Shift-protocol/pkg/jsonutil"
)

// StateService owns the AppState aggregate. Every mutation goes through
// Dispatch: apply one action, then persist. There is a single writer, so no
// further transaction discipline is needed.
type StateService struct {
	repo repository.SnapshotRepositoryI
	now  func() time.Time

	state *entity.AppState
}

func NewStateService(repo repository.SnapshotRepositoryI) *StateService {
	return NewStateServiceWithClock(repo, time.Now)
}

func NewStateServiceWithClock(repo repository.SnapshotRepositoryI, now func() time.Time) *StateService {
	if repo == nil {
		log.Fatal("on state service provided nil snapshot repo")
	}
	serv := &StateService{repo: repo, now: now}
	serv.hydrate()
	return serv
}

// hydrate loads the persisted snapshot. An absent or corrupt slot falls back
// to first-run defaults; nothing here may crash the app.
func (serv *StateService) hydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	state, err := serv.repo.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSnapshotNotFound):
			slog.Info("no persisted snapshot, starting fresh")
		case errors.Is(err, errorvalues.ErrMalformedSnapshot):
			slog.Warn("persisted snapshot unreadable, starting fresh")
		default:
			slog.Error("loading snapshot failed, starting fresh", slog.String("error", err.Error()))
		}
		serv.state = InitialState(serv.now())
		return
	}
	serv.state = state
}

// State returns the current aggregate. Callers treat it as read-only; all
// writes go through Dispatch.
func (serv *StateService) State() *entity.AppState {
	return serv.state
}

// Today returns the current calendar-date key.
func (serv *StateService) Today() string {
	return serv.now().Format(entity.DateLayout)
}

// Dispatch applies an action and persists the result. A storage write failure
// is reported and the in-memory state stays usable; it is never fatal.
func (serv *StateService) Dispatch(ctx context.Context, action Action) *entity.AppState {
	serv.state = Reduce(serv.state, action)
	if err := serv.repo.Save(ctx, serv.state); err != nil {
		slog.Error("changes not saved", slog.String("error", err.Error()))
	}
	return serv.state
}

// ToggleTask flips completion of a schedule item for today.
func (serv *StateService) ToggleTask(ctx context.Context, index int) *entity.AppState {
	return serv.Dispatch(ctx, ToggleTask{Date: serv.Today(), Index: index})
}

// Reset wipes all data back to first-run defaults. Destructive and
// irreversible; confirmation is the caller's job.
func (serv *StateService) Reset(ctx context.Context) *entity.AppState {
	return serv.Dispatch(ctx, Reset{At: serv.now()})
}

// ImportSnapshot validates an externally supplied document and installs it.
// On any failure the existing state is left untouched.
func (serv *StateService) ImportSnapshot(ctx context.Context, data []byte) error {
	state, err := jsonutil.DecodeSnapshot(data)
	if err != nil {
		return errorvalues.ErrMalformedSnapshot
	}
	if err := ValidateSnapshot(state); err != nil {
		return err
	}
	serv.Dispatch(ctx, Import{State: *state})
	return nil
}
