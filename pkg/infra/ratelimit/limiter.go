package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a process-local sliding-window counter keyed by client
// identifier. Check and append happen under one lock, so a burst from the
// same identifier cannot slip past the ceiling between read and write.
type Limiter struct {
	mu           sync.Mutex
	buckets      map[string][]int64
	limit        int
	window       time.Duration
	timeProvider func() time.Time

	stopOnce sync.Once
	done     chan struct{}
}

type Opts struct {
	TimeProvider func() time.Time
}

func NewLimiter(limit int, window time.Duration, opts *Opts) *Limiter {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}

	return &Limiter{
		buckets:      make(map[string][]int64),
		limit:        limit,
		window:       window,
		timeProvider: timeProvider,
		done:         make(chan struct{}),
	}
}

// Allow reports whether the identifier may issue another request now.
// Expired timestamps are discarded before counting; on success the current
// timestamp is recorded within the same critical section.
func (l *Limiter) Allow(key string) bool {
	now := l.timeProvider().UnixMilli()
	cutoff := now - l.window.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.buckets[key][:0]
	for _, ts := range l.buckets[key] {
		if ts > cutoff {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.limit {
		l.buckets[key] = recent
		return false
	}

	l.buckets[key] = append(recent, now)
	return true
}

// Sweep drops identifiers whose every timestamp has left the window,
// bounding memory between bursts.
func (l *Limiter) Sweep() {
	cutoff := l.timeProvider().UnixMilli() - l.window.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, timestamps := range l.buckets {
		alive := false
		for _, ts := range timestamps {
			if ts > cutoff {
				alive = true
				break
			}
		}
		if !alive {
			delete(l.buckets, key)
		}
	}
}

// StartSweeper runs Sweep on the given interval until Stop is called.
func (l *Limiter) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Sweep()
			case <-l.done:
				return
			}
		}
	}()
}

func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

// Size returns the number of tracked identifiers.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
