package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

// EncodeSnapshot serializes the full state aggregate as the snapshot document.
func EncodeSnapshot(state *entity.AppState) ([]byte, error) {
	return sonic.ConfigDefault.Marshal(state)
}

// DecodeSnapshot parses a snapshot document. Callers decide whether a parse
// failure means "fall back to defaults" (load path) or "reject" (import path).
func DecodeSnapshot(data []byte) (*entity.AppState, error) {
	var state entity.AppState
	if err := sonic.ConfigDefault.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// WriteSnapshot streams an encoded snapshot to w, used by the export command.
func WriteSnapshot(w io.Writer, state *entity.AppState) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(state)
}
