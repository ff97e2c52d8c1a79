package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fitcircle/backend/internal/voicelog"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service transcriptService
}

// NewHandler builds a handler with the given service.
func NewHandler(service transcriptService) *Handler {
	return &Handler{
		service: service,
	}
}

// ParseWorkoutInput is the input for parse_workout_speech.
type ParseWorkoutInput struct {
	Text string `json:"text" jsonschema:"The spoken workout description, as transcribed"`
}

// ParseWorkoutSpeechTool returns the MCP tool handler for parse_workout_speech.
func (h *Handler) ParseWorkoutSpeechTool() func(context.Context, *mcp.CallToolRequest, ParseWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ParseWorkoutInput) (*mcp.CallToolResult, any, error) {
		parsed, err := h.service.ParseWorkout(ctx, in.Text)
		if err != nil {
			if errors.Is(err, voicelog.ErrEmptyTranscript) {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: "Empty transcript: provide the spoken workout text"}},
					IsError: true,
				}, nil, nil
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error parsing workout: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// ParseFeelingInput is the input for parse_feeling_speech.
type ParseFeelingInput struct {
	Text string `json:"text" jsonschema:"The spoken post-workout check-in, as transcribed"`
}

// ParseFeelingSpeechTool returns the MCP tool handler for parse_feeling_speech.
func (h *Handler) ParseFeelingSpeechTool() func(context.Context, *mcp.CallToolRequest, ParseFeelingInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ParseFeelingInput) (*mcp.CallToolResult, any, error) {
		parsed, err := h.service.ParseFeeling(ctx, in.Text)
		if err != nil {
			if errors.Is(err, voicelog.ErrEmptyTranscript) {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: "Empty transcript: provide the spoken check-in text"}},
					IsError: true,
				}, nil, nil
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error parsing feeling: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// ListKnownExercisesTool returns the MCP tool handler for list_known_exercises.
func (h *Handler) ListKnownExercisesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		raw, err := json.MarshalIndent(h.service.KnownExercises(), "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}
