package repository

import (
	"context"
	"database/sql"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

type SnapshotRepositoryI interface {
	// Reads the persisted snapshot. ErrSnapshotNotFound when the slot is empty,
	// ErrMalformedSnapshot when the stored document doesn't parse.
	Load(ctx context.Context) (*entity.AppState, error)
	// Serializes and writes the full state under the versioned key.
	Save(ctx context.Context, state *entity.AppState) error
	// Returns the stored document byte-exact, for export.
	Raw(ctx context.Context) ([]byte, error)
	// Empties the slot.
	Delete(ctx context.Context) error
}

type SQLConnection interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DBConfig interface {
	ConnString() string
}

type SQLiteCfg struct {
	Path string
}

func (cfg *SQLiteCfg) ConnString() string {
	return "file:" + cfg.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}
