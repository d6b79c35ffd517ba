package service_test

import (
	"context"
	"time"

	errorvalues "github.com/manojv472/Shift-protocol/internal/error_values"
	"github.com/manojv472/Shift-protocol/pkg/entity"
	"github.com/manojv472/Shift-protocol/pkg/jsonutil"
)

// fakeSnapshotRepo is an in-memory stand-in for the sqlite repository.
type fakeSnapshotRepo struct {
	stored  *entity.AppState
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeSnapshotRepo) Load(_ context.Context) (*entity.AppState, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.stored == nil {
		return nil, errorvalues.ErrSnapshotNotFound
	}
	return f.stored.Clone(), nil
}

func (f *fakeSnapshotRepo) Save(_ context.Context, state *entity.AppState) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = state.Clone()
	f.saves++
	return nil
}

func (f *fakeSnapshotRepo) Raw(_ context.Context) ([]byte, error) {
	if f.stored == nil {
		return nil, errorvalues.ErrSnapshotNotFound
	}
	return jsonutil.EncodeSnapshot(f.stored)
}

func (f *fakeSnapshotRepo) Delete(_ context.Context) error {
	f.stored = nil
	return nil
}

// fixedClock pins services to 2024-05-01, a Wednesday (auto-shift A).
func fixedClock() time.Time {
	return time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
}
