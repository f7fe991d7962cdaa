package leadform

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewToken returns a fresh submission token for a rendered form.
func NewToken() string {
	return uuid.NewString()
}

// Guard rejects a submission token that is already in flight, or that already
// succeeded within the retention window. A token whose submission failed is
// released so the visitor can retry with it.
type Guard struct {
	mu        sync.Mutex
	inflight  map[string]struct{}
	completed map[string]time.Time
	retention time.Duration
	now       func() time.Time
}

// NewGuard returns a guard that remembers succeeded tokens for retention.
func NewGuard(retention time.Duration) *Guard {
	return &Guard{
		inflight:  make(map[string]struct{}),
		completed: make(map[string]time.Time),
		retention: retention,
		now:       time.Now,
	}
}

// Acquire marks token as in flight.
func (g *Guard) Acquire(token string) error {
	if token == "" {
		return ErrMissingToken
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[token]; busy {
		return ErrAlreadySubmitting
	}
	if at, done := g.completed[token]; done && g.now().Sub(at) < g.retention {
		return ErrAlreadySubmitted
	}
	g.inflight[token] = struct{}{}
	return nil
}

// Release ends the in-flight period of token. Succeeded tokens are retained.
func (g *Guard) Release(token string, succeeded bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, token)
	if succeeded {
		g.completed[token] = g.now()
	}
}

// Prune drops succeeded tokens older than the retention window and returns how
// many were removed.
func (g *Guard) Prune() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	removed := 0
	now := g.now()
	for token, at := range g.completed {
		if now.Sub(at) >= g.retention {
			delete(g.completed, token)
			removed++
		}
	}
	return removed
}

// InFlight returns the number of submissions currently being relayed.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inflight)
}
