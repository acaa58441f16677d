package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Файл unit-тестов process-local лимитера (ratelimit.go).
//
// Покрываем:
//  - расход квоты в пределах окна и отказ сверх неё;
//  - RetryAfter при отказе (и нижнюю границу в 1s);
//  - сброс окна по времени;
//  - независимость ключей (bucket, identity).

// newMemoryForTest — лимитер с управляемыми часами.
func newMemoryForTest(t *testing.T, max int, window time.Duration) (*memoryLimiter, *time.Time) {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemory(max, window).(*memoryLimiter)
	l.nowFunc = func() time.Time { return now }

	return l, &now
}

func TestMemoryLimiter_ConsumesQuota(t *testing.T) {
	t.Parallel()

	l, _ := newMemoryForTest(t, 3, 10*time.Minute)
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		res, err := l.Consume(ctx, "refresh", "10.0.0.1")
		require.NoError(t, err)
		require.True(t, res.Allowed)
		require.Equal(t, want, res.Remaining)
	}

	res, err := l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Equal(t, 10*time.Minute, res.RetryAfter)
}

func TestMemoryLimiter_RetryAfterFloor(t *testing.T) {
	t.Parallel()

	l, now := newMemoryForTest(t, 1, 10*time.Minute)
	ctx := context.Background()

	_, err := l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)

	// До конца окна осталось меньше секунды — RetryAfter не опускается ниже 1s.
	*now = now.Add(10*time.Minute - 200*time.Millisecond)

	res, err := l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Equal(t, time.Second, res.RetryAfter)
}

func TestMemoryLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	l, now := newMemoryForTest(t, 1, 10*time.Minute)
	ctx := context.Background()

	res, err := l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)
	require.True(t, res.Allowed)

	res, err = l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)
	require.False(t, res.Allowed)

	*now = now.Add(10 * time.Minute)

	res, err = l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)
	require.True(t, res.Allowed)
}

// TestMemoryLimiter_IndependentKeys — квоты (bucket, identity) не пересекаются.
func TestMemoryLimiter_IndependentKeys(t *testing.T) {
	t.Parallel()

	l, _ := newMemoryForTest(t, 1, 10*time.Minute)
	ctx := context.Background()

	res, err := l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)
	require.True(t, res.Allowed)

	// Та же identity, другой bucket.
	res, err = l.Consume(ctx, "create", "10.0.0.1")
	require.NoError(t, err)
	require.True(t, res.Allowed)

	// Тот же bucket, другая identity.
	res, err = l.Consume(ctx, "refresh", "10.0.0.2")
	require.NoError(t, err)
	require.True(t, res.Allowed)

	// Исходный ключ исчерпан.
	res, err = l.Consume(ctx, "refresh", "10.0.0.1")
	require.NoError(t, err)
	require.False(t, res.Allowed)
}
