// ratelimit — лимитер с фиксированным окном для админ-операций (refresh).
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result — решение лимитера по одному запросу.
type Result struct {
	Allowed bool
	// Остаток квоты в текущем окне.
	Remaining int
	// Рекомендуемая пауза до повтора (для Retry-After); 0, если запрос разрешён.
	RetryAfter time.Duration
}

// Limiter — контракт лимитера. Ключ — пара (bucket, identity).
type Limiter interface {
	// Consume списывает одну единицу квоты и возвращает решение.
	Consume(ctx context.Context, bucket, identity string) (Result, error)
	Close() error
}

type windowState struct {
	count   int
	resetAt time.Time
}

// memoryLimiter — process-local реализация с фиксированным окном.
// Состояние не переживает рестарт и не разделяется между инстансами —
// пригодно только для single-instance развёртывания; для прода см. NewRedis.
type memoryLimiter struct {
	mu      sync.Mutex
	state   map[string]windowState
	max     int
	window  time.Duration
	nowFunc func() time.Time
}

// NewMemory создаёт process-local лимитер: max запросов на окно window.
func NewMemory(max int, window time.Duration) Limiter {
	return &memoryLimiter{
		state:   make(map[string]windowState),
		max:     max,
		window:  window,
		nowFunc: time.Now,
	}
}

func (l *memoryLimiter) Consume(_ context.Context, bucket, identity string) (Result, error) {
	key := bucket + ":" + identity
	now := l.nowFunc()

	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.state[key]
	if !ok || !now.Before(current.resetAt) {
		l.state[key] = windowState{count: 1, resetAt: now.Add(l.window)}
		return Result{Allowed: true, Remaining: l.max - 1}, nil
	}

	if current.count >= l.max {
		retry := current.resetAt.Sub(now)
		if retry < time.Second {
			retry = time.Second
		}
		return Result{Allowed: false, RetryAfter: retry}, nil
	}

	current.count++
	l.state[key] = current

	return Result{Allowed: true, Remaining: l.max - current.count}, nil
}

func (l *memoryLimiter) Close() error { return nil }
