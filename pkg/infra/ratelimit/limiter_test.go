package ratelimit_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BOKA26/lovotech-nexus/pkg/infra/ratelimit"
)

func TestLimiter_AllowsUpToCeiling(t *testing.T) {
	current := time.Unix(1740730536, 0)
	limiter := ratelimit.NewLimiter(10, time.Minute, &ratelimit.Opts{
		TimeProvider: func() time.Time { return current },
	})

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("203.0.113.7"), "11th request within the window must be rejected")
}

func TestLimiter_IdentifiersAreIndependent(t *testing.T) {
	current := time.Unix(1740730536, 0)
	limiter := ratelimit.NewLimiter(1, time.Minute, &ratelimit.Opts{
		TimeProvider: func() time.Time { return current },
	})

	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.False(t, limiter.Allow("203.0.113.7"))
	assert.True(t, limiter.Allow("198.51.100.23"))
}

func TestLimiter_WindowReset(t *testing.T) {
	current := time.Unix(1740730536, 0)
	limiter := ratelimit.NewLimiter(10, time.Minute, &ratelimit.Opts{
		TimeProvider: func() time.Time { return current },
	})

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"))
	}
	assert.False(t, limiter.Allow("203.0.113.7"))

	current = current.Add(61 * time.Second)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"), "quota should fully reset after the window")
	}
	assert.False(t, limiter.Allow("203.0.113.7"))
}

func TestLimiter_PartialExpiry(t *testing.T) {
	current := time.Unix(1740730536, 0)
	limiter := ratelimit.NewLimiter(10, time.Minute, &ratelimit.Opts{
		TimeProvider: func() time.Time { return current },
	})

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"))
	}

	current = current.Add(30 * time.Second)
	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"))
	}
	assert.False(t, limiter.Allow("203.0.113.7"))

	// 31 more seconds expire the first batch but not the second.
	current = current.Add(31 * time.Second)
	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"))
	}
	assert.False(t, limiter.Allow("203.0.113.7"))
}

func TestLimiter_SweepDropsDrainedIdentifiers(t *testing.T) {
	current := time.Unix(1740730536, 0)
	limiter := ratelimit.NewLimiter(10, time.Minute, &ratelimit.Opts{
		TimeProvider: func() time.Time { return current },
	})

	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.True(t, limiter.Allow("198.51.100.23"))
	assert.Equal(t, 2, limiter.Size())

	current = current.Add(30 * time.Second)
	assert.True(t, limiter.Allow("198.51.100.23"))

	current = current.Add(45 * time.Second)
	limiter.Sweep()

	// The first identifier drained fully; the second still has a live entry.
	assert.Equal(t, 1, limiter.Size())
}

func TestLimiter_ConcurrentAllow(t *testing.T) {
	limiter := ratelimit.NewLimiter(10, time.Minute, nil)

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- limiter.Allow("203.0.113.7")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	assert.Equal(t, 10, count, "exactly the ceiling may pass under concurrency")
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	limiter := ratelimit.NewLimiter(10, time.Minute, nil)
	limiter.StartSweeper(time.Millisecond)

	limiter.Stop()
	assert.NotPanics(t, func() { limiter.Stop() })
}
