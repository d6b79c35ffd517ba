package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	errorvalues "github.com/manojv472/Shift-protocol/internal/error_values"
	"github.com/manojv472/Shift-protocol/internal/repository"
	"github.com/manojv472/Shift-protocol/pkg/entity"
)

func newTestRepo(t *testing.T) (*repository.SnapshotRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return repository.NewSnapshotRepoWithConn(db), db
}

func sampleState() *entity.AppState {
	return &entity.AppState{
		Logs: []entity.DailyLog{
			{
				Date: "2024-05-01", Shift: entity.ShiftA,
				SleepHours: 7.5, SleepQuality: 8, Energy: 6, Mood: 7,
				ProteinHit: true, Hydration: true,
				Habits: entity.HabitFlags{NoAlcohol: true, NoNicotine: true, CleanPMO: true},
			},
		},
		TrainingLogs: []entity.TrainingLog{
			{
				ID: "abc123", Date: "2024-05-01", WorkoutID: "upperA",
				Exercises: []entity.ExerciseProgress{
					{ExerciseID: "u1", Sets: []entity.SetEntry{{Weight: 60, Reps: 6, Completed: true}, {Weight: 60, Reps: 5}}},
				},
			},
		},
		CompletedTasks: map[string][]int{"2024-05-01": {0, 2, 5}},
		CurrentShift:   entity.ShiftB,
		Settings:       entity.Settings{ThemeIntensity: 70, TextSize: entity.TextMedium, TimeFormat: entity.TimeFormat24h},
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	t.Parallel()
	repo, _ := newTestRepo(t)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, errorvalues.ErrSnapshotNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	state := sampleState()

	require.NoError(t, repo.Save(ctx, state))
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded, "serialization is lossless for the defined shape")
}

func TestSaveOverwritesSingleSlot(t *testing.T) {
	t.Parallel()
	repo, db := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleState()))
	updated := sampleState()
	updated.Settings.ThemeIntensity = 5
	require.NoError(t, repo.Save(ctx, updated))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Settings.ThemeIntensity)

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots;`).Scan(&rows))
	assert.Equal(t, 1, rows, "the adapter owns exactly one slot")
}

func TestLoadMalformedSnapshot(t *testing.T) {
	t.Parallel()
	repo, db := newTestRepo(t)
	ctx := context.Background()
	_, err := db.ExecContext(
		ctx,
		`INSERT INTO snapshots (key, payload) VALUES ($1, $2);`,
		repository.SnapshotKey,
		[]byte("{definitely not json"),
	)
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrMalformedSnapshot)

	// The raw bytes stay readable for diagnosis.
	raw, err := repo.Raw(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("{definitely not json"), raw)
}

func TestDeleteEmptiesSlot(t *testing.T) {
	t.Parallel()
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleState()))
	require.NoError(t, repo.Delete(ctx))
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrSnapshotNotFound)
}

func TestUpdatedAtAdvances(t *testing.T) {
	t.Parallel()
	repo, db := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleState()))
	var first string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT updated_at FROM snapshots;`).Scan(&first))
	_, err := time.Parse("2006-01-02 15:04:05", first)
	assert.NoError(t, err, "updated_at is a sqlite CURRENT_TIMESTAMP")
}
