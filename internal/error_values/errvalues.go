package errorvalues

import "errors"

var (
	ErrSnapshotNotFound  = errors.New("snapshot doesn't exist")
	ErrMalformedSnapshot = errors.New("snapshot is not valid JSON")
	ErrInvalidSnapshot   = errors.New("snapshot failed validation")
	ErrUnknownWorkout    = errors.New("workout doesn't exist in catalog")
	ErrNoActiveSession   = errors.New("no training session in progress")
	ErrSessionInProgress = errors.New("training session already in progress")
)
