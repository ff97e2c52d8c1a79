package mcp

import (
	"context"

	"github.com/fitcircle/backend/internal/voicelog"
)

// transcriptService provides voice transcript parsing (for dependency injection and testing).
// Used by Handler; implemented by voicelog.Service.
type transcriptService interface {
	ParseWorkout(ctx context.Context, transcript string) (*voicelog.ParsedWorkoutData, error)
	ParseFeeling(ctx context.Context, transcript string) (*voicelog.FeelingResult, error)
	KnownExercises() []string
}

var _ transcriptService = (*voicelog.Service)(nil)
