package test

import (
	"context"
	"time"

	"github.com/stretchr/testify/require"
)

// newSessionToken mints a session directly in redis, standing in for the
// upstream identity service that normally hands tokens to clients.
func (s *IntegrationTestSuite) newSessionToken(ctx context.Context) string {
	token, err := s.authService.Login(ctx, time.Now())
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), token)
	return token
}

func (s *IntegrationTestSuite) redisDataCleanup(ctx context.Context) error {
	return s.redisClient.FlushAll(ctx).Err()
}
