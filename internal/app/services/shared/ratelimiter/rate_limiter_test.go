package ratelimiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestApplyResourceLimiter(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 20, 0, time.UTC)

	input := func() *ApplyResourceLimiterInput {
		return &ApplyResourceLimiterInput{
			ResourceName:      "203.0.113.7",
			LimiterGroupName:  "payment-callback",
			WindowDurationSec: 60,
			MaxQuota:          5,
			NowUTC:            now,
		}
	}

	t.Run("allows requests within the window quota", func(t *testing.T) {
		redis := new(MockRedisRepository)
		limiter := NewResourceLimiter(redis, zap.NewNop())

		redis.On("IncrementWithTTL", mock.Anything, mock.Anything, 60*time.Second).Return(int64(5), nil)

		out, err := limiter.ApplyResourceLimiter(context.Background(), input())

		assert.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("rejects above quota with retry-after to the window boundary", func(t *testing.T) {
		redis := new(MockRedisRepository)
		limiter := NewResourceLimiter(redis, zap.NewNop())

		redis.On("IncrementWithTTL", mock.Anything, mock.Anything, 60*time.Second).Return(int64(6), nil)

		out, err := limiter.ApplyResourceLimiter(context.Background(), input())

		assert.NoError(t, err)
		assert.False(t, out.Allowed)
		// now is 20s into the minute window, so the boundary is 40s away.
		assert.Equal(t, 40, out.RetryAfterSecs)
	})

	t.Run("requests in different windows use different keys", func(t *testing.T) {
		redis := new(MockRedisRepository)
		limiter := NewResourceLimiter(redis, zap.NewNop())

		var keys []string
		redis.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				keys = append(keys, args.String(1))
			}).
			Return(int64(1), nil)

		first := input()
		_, err := limiter.ApplyResourceLimiter(context.Background(), first)
		assert.NoError(t, err)

		second := input()
		second.NowUTC = now.Add(60 * time.Second)
		_, err = limiter.ApplyResourceLimiter(context.Background(), second)
		assert.NoError(t, err)

		assert.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("zero quota disables the limiter", func(t *testing.T) {
		redis := new(MockRedisRepository)
		limiter := NewResourceLimiter(redis, zap.NewNop())

		in := input()
		in.MaxQuota = 0

		out, err := limiter.ApplyResourceLimiter(context.Background(), in)

		assert.NoError(t, err)
		assert.True(t, out.Allowed)
		redis.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure propagates to the caller", func(t *testing.T) {
		redis := new(MockRedisRepository)
		limiter := NewResourceLimiter(redis, zap.NewNop())

		redis.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), errors.New("connection refused"))

		_, err := limiter.ApplyResourceLimiter(context.Background(), input())

		assert.Error(t, err)
	})
}
