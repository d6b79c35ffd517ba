package service

import (
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/manojv472/Shift-protocol/internal/error_values"
	"github.com/manojv472/Shift-protocol/pkg/entity"
)

// Package for snapshot validation
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
	})
}

// ValidateSnapshot guards the import boundary: enums, metric ranges and date
// formats via struct tags, plus the one invariant tags can't express, at most
// one daily log per date. The load path deliberately skips this; only imports
// of external documents are rejected.
func ValidateSnapshot(state *entity.AppState) error {
	InitValidator()
	if state == nil {
		return errorvalues.ErrInvalidSnapshot
	}
	if err := validate.Struct(state); err != nil {
		return errorvalues.ErrInvalidSnapshot
	}
	seen := make(map[string]struct{}, len(state.Logs))
	for _, l := range state.Logs {
		if _, ok := seen[l.Date]; ok {
			return errorvalues.ErrInvalidSnapshot
		}
		seen[l.Date] = struct{}{}
	}
	return nil
}
