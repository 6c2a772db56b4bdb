// Package activity tracks when the server last handled a request. The idle
// preloader consults the tracker to warm the cache only during quiet periods.
package activity

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Tracker records the time of the most recent request. Safe for concurrent
// use.
type Tracker struct {
	mu   sync.RWMutex
	last time.Time
}

// NewTracker creates a tracker; the construction time counts as activity so a
// freshly started server is not immediately considered idle.
func NewTracker() *Tracker {
	return &Tracker{last: time.Now()}
}

// Touch records activity now.
func (t *Tracker) Touch() {
	t.mu.Lock()
	t.last = time.Now()
	t.mu.Unlock()
}

// Last returns the time of the most recent activity.
func (t *Tracker) Last() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last
}

// IdleFor reports whether no activity was recorded for at least d.
func (t *Tracker) IdleFor(d time.Duration) bool {
	return time.Since(t.Last()) >= d
}

// New creates the middleware that feeds the tracker.
func New(t *Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t.Touch()
		return c.Next()
	}
}
