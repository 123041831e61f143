package confirm

import (
	"context"
	"errors"
	"sync"
)

// ErrNotOpen is returned when Confirm runs without a pending request.
var ErrNotOpen = errors.New("no confirmation pending")

// DeleteFunc performs the destructive operation for the confirmed target.
type DeleteFunc func(ctx context.Context, id string) error

// Gate blocks a destructive action until the user explicitly confirms it.
// The delete operation is reachable only through Confirm while a request is
// pending; Cancel drops the request with no side effect.
type Gate struct {
	mu       sync.Mutex
	open     bool
	targetID string
}

// RequestDelete arms the gate for the given target, replacing any earlier
// pending request.
func (g *Gate) RequestDelete(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.open = true
	g.targetID = id
}

// Cancel drops the pending request. No side effect.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.open = false
	g.targetID = ""
}

// Pending reports whether a request is armed and for which target.
func (g *Gate) Pending() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.targetID, g.open
}

// Confirm runs del against the pending target. The gate closes before del
// runs and stays closed regardless of outcome; a failure is returned to the
// caller, never swallowed.
func (g *Gate) Confirm(ctx context.Context, del DeleteFunc) error {
	g.mu.Lock()
	if !g.open {
		g.mu.Unlock()
		return ErrNotOpen
	}
	id := g.targetID
	g.open = false
	g.targetID = ""
	g.mu.Unlock()

	return del(ctx, id)
}
