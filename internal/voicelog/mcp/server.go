package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fitcircle/backend/internal/voicelog"
)

// NewServer builds an MCP server with voicelog tools: workout speech parsing,
// feeling parsing, known exercises.
// Used by the main backend when mounting MCP at /mcp (internal/server).
func NewServer(service *voicelog.Service) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "voicelog-parser",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "parse_workout_speech",
		Description: "Parses a spoken workout description into structured data: exercises (name, sets, reps, weight, distance, duration), session duration, feeling, RPE, notes, and a confidence score. Arg: text (the transcript). Use when turning a voice note into a workout log entry.",
	}, h.ParseWorkoutSpeechTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "parse_feeling_speech",
		Description: "Parses a spoken post-workout check-in into a feeling label and an RPE estimate (explicit RPE in the text wins over the implied one). Arg: text (the transcript). Use for quick mood/effort check-ins without a full workout description.",
	}, h.ParseFeelingSpeechTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_known_exercises",
		Description: "Returns the canonical exercise names the parser can resolve from speech (sorted). Use when you need the list of recognized exercises, e.g. for matching or autocomplete.",
	}, h.ListKnownExercisesTool())

	return s
}
