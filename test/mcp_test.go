package test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMcpSecretGate checks that the MCP mount rejects requests without the
// shared secret. A proper MCP session exercise lives in the mcp package tests,
// here we only care that the gate in front of it works.
func (s *IntegrationTestSuite) TestMcpSecretGate() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initializeReq := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test-client","version":"1.0.0"}}}`

	cases := map[string]struct {
		secret             string
		expectedStatusCode int
	}{
		"no secret":    {secret: "", expectedStatusCode: http.StatusBadRequest},
		"wrong secret": {secret: "not-the-mcp-secret", expectedStatusCode: http.StatusBadRequest},
		"valid secret": {secret: testMCPSecret, expectedStatusCode: http.StatusOK},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/mcp", serverEndpoint), strings.NewReader(initializeReq))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json, text/event-stream")
			if tc.secret != "" {
				req.Header.Set("X-MCP-Secret", tc.secret)
			}

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			assert.NoError(t, resp.Body.Close())
		})
	}
}
