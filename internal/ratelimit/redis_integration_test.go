//go:build integration

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/online-dot/abroad-application-platform/internal/ratelimit"
	"github.com/online-dot/abroad-application-platform/pkg/testutil/containers"
)

type RedisLimiterSuite struct {
	suite.Suite
	redis   *containers.RedisContainer
	limiter *ratelimit.RedisLimiter
}

func TestRedisLimiterSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisLimiterSuite))
}

func (s *RedisLimiterSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.limiter = ratelimit.NewRedis(s.redis.Client)
}

func (s *RedisLimiterSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisLimiterSuite) TestFixedWindow() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result, err := s.limiter.Allow(ctx, "submit:a", 5, time.Minute)
		s.Require().NoError(err)
		s.True(result.Allowed, "attempt %d within the limit", i+1)
		s.Equal(5-i-1, result.Remaining)
	}

	result, err := s.limiter.Allow(ctx, "submit:a", 5, time.Minute)
	s.Require().NoError(err)
	s.False(result.Allowed)
	s.Greater(result.RetryAfter, time.Duration(0))
	s.LessOrEqual(result.RetryAfter, time.Minute)
}

func (s *RedisLimiterSuite) TestWindowExpires() {
	ctx := context.Background()
	window := time.Second

	for i := 0; i < 2; i++ {
		_, err := s.limiter.Allow(ctx, "submit:a", 2, window)
		s.Require().NoError(err)
	}

	result, err := s.limiter.Allow(ctx, "submit:a", 2, window)
	s.Require().NoError(err)
	s.False(result.Allowed)

	time.Sleep(window + 200*time.Millisecond)

	result, err = s.limiter.Allow(ctx, "submit:a", 2, window)
	s.Require().NoError(err)
	s.True(result.Allowed, "window has expired")
}

func (s *RedisLimiterSuite) TestKeysAreIndependent() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.limiter.Allow(ctx, "submit:a", 3, time.Minute)
		s.Require().NoError(err)
	}

	result, err := s.limiter.Allow(ctx, "submit:b", 3, time.Minute)
	s.Require().NoError(err)
	s.True(result.Allowed)
}
