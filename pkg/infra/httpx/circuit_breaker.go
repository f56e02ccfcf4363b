package httpx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// CircuitBreaker guards an outbound HTTP call; after consecutive failures
// the breaker opens and calls fail fast until the timeout elapses.
type CircuitBreaker interface {
	Do(fn func() (*http.Response, error)) (*http.Response, error)
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *circuitBreakerWrapper) Do(fn func() (*http.Response, error)) (*http.Response, error) {
	res, err := g.breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return nil, fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
	}
	resp, ok := res.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("breaker (%s): unexpected result type", g.breaker.Name())
	}
	return resp, nil
}
