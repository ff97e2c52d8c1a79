package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/fitcircle/backend/internal/voicelog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestParseWorkout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.newSessionToken(ctx)

	body := `{"text": "3 sets of 10 reps at 135 pounds on bench press, felt good, rpe 7"}`
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/voicelog/workout", serverEndpoint), bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FITCIRCLE-TOKEN", token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed voicelog.ParsedWorkoutData
	require.NoError(t, json.Unmarshal(respBytes, &parsed))
	require.Len(t, parsed.Exercises, 1)
	assert.Equal(t, "Bench Press", parsed.Exercises[0].Name)
	require.NotNil(t, parsed.Exercises[0].Sets)
	assert.Equal(t, 3, *parsed.Exercises[0].Sets)
	assert.Equal(t, "10", parsed.Exercises[0].Reps)
	require.NotNil(t, parsed.Exercises[0].Weight)
	assert.Equal(t, 135.0, *parsed.Exercises[0].Weight)
	assert.Equal(t, "lbs", parsed.Exercises[0].Unit)
	assert.NotEmpty(t, parsed.Exercises[0].ID)
	assert.Equal(t, "good", parsed.Feeling)
	require.NotNil(t, parsed.RPE)
	assert.Equal(t, 7.0, *parsed.RPE)
	assert.GreaterOrEqual(t, parsed.Confidence, 0.6)
}

func (s *IntegrationTestSuite) TestParseWorkoutVoiceApp() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the voice companion app authenticates with its secret, no session token
	body := `{"text": "ran 5 km in 30 minutes"}`
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/voicelog/workout", serverEndpoint), bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "FitCircleVoice/2.1")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", testVoiceAppSecret)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed voicelog.ParsedWorkoutData
	require.NoError(t, json.Unmarshal(respBytes, &parsed))
	require.Len(t, parsed.Exercises, 1)
	assert.Equal(t, "Running", parsed.Exercises[0].Name)
	require.NotNil(t, parsed.Exercises[0].Distance)
	assert.Equal(t, 5.0, *parsed.Exercises[0].Distance)
	assert.Equal(t, "km", parsed.Exercises[0].DistanceUnit)
	require.NotNil(t, parsed.Exercises[0].Duration)
	assert.Equal(t, 30, *parsed.Exercises[0].Duration)
}

func (s *IntegrationTestSuite) TestParseWorkoutUnauthorized() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		token       string
		voiceSecret string
	}{
		"no token":           {},
		"invalid token":      {token: "nonexistent-token"},
		"wrong voice secret": {voiceSecret: "wrong-secret"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			body := `{"text": "3 sets of 10 reps on bench press"}`
			req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/voicelog/workout", serverEndpoint), bytes.NewBufferString(body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			if tc.voiceSecret != "" {
				req.Header.Set("User-Agent", "FitCircleVoice/2.1")
				req.Header.Set("Authorization", tc.voiceSecret)
			} else {
				req.Header.Set("User-Agent", "test-agent")
			}
			if tc.token != "" {
				req.Header.Set("X-FITCIRCLE-TOKEN", tc.token)
			}

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.NoError(t, resp.Body.Close())
		})
	}
}

func (s *IntegrationTestSuite) TestParseFeeling() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.newSessionToken(ctx)

	body := `{"text": "felt great, RPE 8"}`
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/voicelog/feeling", serverEndpoint), bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FITCIRCLE-TOKEN", token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var feeling voicelog.FeelingResult
	require.NoError(t, json.Unmarshal(respBytes, &feeling))
	assert.Equal(t, "great", feeling.Feeling)
	require.NotNil(t, feeling.RPE)
	assert.Equal(t, 8.0, *feeling.RPE)
}

func (s *IntegrationTestSuite) TestListExercises() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.newSessionToken(ctx)

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/voicelog/exercises", serverEndpoint), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-FITCIRCLE-TOKEN", token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var exercises []string
	require.NoError(t, json.Unmarshal(respBytes, &exercises))
	assert.Equal(t, voicelog.CanonicalExerciseNames(), exercises)
}

func (s *IntegrationTestSuite) TestVoicelogRateLimiting() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// config is set to allow 10 parse requests per minute, so after the
	// 10th attempt we should get a rate limit response
	// but first, do a redis cleanup to start counting from zero
	require.NoError(t, s.redisDataCleanup(ctx))

	token := s.newSessionToken(ctx)
	body := `{"text": "squats, 5 by 5 at 225"}`

	for i := 1; i <= 15; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/voicelog/workout", serverEndpoint), bytes.NewBufferString(body))
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-FITCIRCLE-TOKEN", token)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)

		if i <= 10 {
			require.Equal(t, http.StatusOK, resp.StatusCode, "iteration: %d", i)
		} else {
			require.Equal(t, http.StatusTooEarly, resp.StatusCode, "iteration: %d", i)
			respBytes, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "iteration: %d", i)
			assert.True(t, strings.HasPrefix(string(respBytes), "retry after"), "iteration: %d", i)
		}

		assert.NoError(t, resp.Body.Close())
	}

	require.NoError(t, s.redisDataCleanup(ctx))
}
