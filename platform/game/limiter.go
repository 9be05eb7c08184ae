package game

import (
	"strings"
	"sync"
	"time"
)

// RateLimiter is a fixed-window guard keyed by connection id and action.
// Counters are shared across rooms, so access is independently locked.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
	stop    chan struct{}
}

type window struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter starts a limiter with a background sweep of expired
// windows every minute. Call Close to stop it.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Allow admits up to max actions per window for the given connection and
// action, rejecting the rest until the window resets.
func (rl *RateLimiter) Allow(connID, action string, max int, per time.Duration) bool {
	key := connID + ":" + action
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(per)}
		return true
	}
	if w.count >= max {
		return false
	}
	w.count++
	return true
}

// Forget drops every window for a connection, used when it goes away.
func (rl *RateLimiter) Forget(connID string) {
	prefix := connID + ":"
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key := range rl.windows {
		if strings.HasPrefix(key, prefix) {
			delete(rl.windows, key)
		}
	}
}

func (rl *RateLimiter) Close() {
	close(rl.stop)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

// sweep removes windows that expired over a minute ago.
func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, w := range rl.windows {
		if now.After(w.resetAt.Add(time.Minute)) {
			delete(rl.windows, key)
		}
	}
}
