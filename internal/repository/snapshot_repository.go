package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"

	_ "modernc.org/sqlite"

	errorvalues "github.com/manojv472/Shift-protocol/internal/error_values"
	"github.com/manojv472/Shift-protocol/pkg/cleanup"
	"github.com/manojv472/Shift-protocol/pkg/entity"
	"github.com/manojv472/Shift-protocol/pkg/jsonutil"
)

// SnapshotKey is the fixed versioned key the whole aggregate lives under,
// matching the document key used by earlier releases.
const SnapshotKey = "shift_protocol_v1_8_5"

type SnapshotRepository struct {
	conn SQLConnection
	key  string
}

func NewSnapshotRepo(cfg DBConfig) *SnapshotRepository {
	db, err := sql.Open("sqlite", cfg.ConnString())
	if err != nil {
		log.Fatal("opening snapshot database error: " + err.Error())
	}
	// The adapter is the sole reader and writer; one connection avoids
	// sqlite lock contention entirely.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		log.Fatal("error while pinging snapshot database: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing snapshot database",
		F:    db.Close,
	})
	repo := &SnapshotRepository{conn: db, key: SnapshotKey}
	if err := repo.migrate(context.Background(), db); err != nil {
		log.Fatal("migrating snapshot database error: " + err.Error())
	}
	return repo
}

func NewSnapshotRepoWithConn(conn SQLConnection) *SnapshotRepository {
	repo := &SnapshotRepository{conn: conn, key: SnapshotKey}
	if err := repo.migrate(context.Background(), conn); err != nil {
		log.Fatal("migrating snapshot database error: " + err.Error())
	}
	return repo
}

func (repo *SnapshotRepository) migrate(ctx context.Context, conn SQLConnection) error {
	_, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

func (repo *SnapshotRepository) Load(ctx context.Context) (*entity.AppState, error) {
	data, err := repo.Raw(ctx)
	if err != nil {
		return nil, err
	}
	state, err := jsonutil.DecodeSnapshot(data)
	if err != nil {
		// A corrupt slot must never take the app down; callers fall back
		// to defaults.
		slog.Warn("persisted snapshot is corrupt", slog.String("error", err.Error()))
		return nil, errorvalues.ErrMalformedSnapshot
	}
	return state, nil
}

func (repo *SnapshotRepository) Save(ctx context.Context, state *entity.AppState) error {
	payload, err := jsonutil.EncodeSnapshot(state)
	if err != nil {
		return errors.New("encoding snapshot error: " + err.Error())
	}
	_, err = repo.conn.ExecContext(
		ctx,
		`INSERT INTO snapshots (key, payload, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at;`,
		repo.key,
		payload,
	)
	if err != nil {
		return errors.New("writing snapshot error: " + err.Error())
	}
	return nil
}

func (repo *SnapshotRepository) Raw(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := repo.conn.QueryRowContext(
		ctx,
		`SELECT payload FROM snapshots WHERE key = $1;`,
		repo.key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrSnapshotNotFound
		}
		return nil, errors.New("reading snapshot error: " + err.Error())
	}
	return payload, nil
}

func (repo *SnapshotRepository) Delete(ctx context.Context) error {
	_, err := repo.conn.ExecContext(ctx, `DELETE FROM snapshots WHERE key = $1;`, repo.key)
	if err != nil {
		return errors.New("deleting snapshot error: " + err.Error())
	}
	return nil
}
