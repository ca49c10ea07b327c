// Package guard implements the time-boxed authorization rule for entry
// mutation: an entry may be edited only within a fixed window after its
// creation.
package guard

import (
	"fmt"
	"time"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
)

// DefaultWindow is the edit authorization window measured from entry creation.
const DefaultWindow = 24 * time.Hour

// PermissionError reports a refused mutation of an entry whose edit
// window has expired. The entry is left untouched.
type PermissionError struct {
	ID        string
	CreatedAt time.Time
	Window    time.Duration
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("entry %s can no longer be edited: created %s, edit window is %s",
		e.ID, e.CreatedAt.Format(time.RFC3339), e.Window)
}

// Guard authorizes mutation of existing entries. Now is injectable for
// testing and defaults to time.Now.
type Guard struct {
	Window time.Duration
	Now    func() time.Time
}

// New returns a Guard with the given window. A zero or negative window
// falls back to DefaultWindow.
func New(window time.Duration) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Guard{Window: window, Now: time.Now}
}

// Authorize returns nil when the entry may still be edited, or a
// PermissionError when the window has expired. Creation is unconditional
// and deletion is not a defined operation, so only edits pass through here.
func (g *Guard) Authorize(e entry.Entry) error {
	now := g.Now
	if now == nil {
		now = time.Now
	}
	if now().Sub(e.CreatedAt) > g.Window {
		return &PermissionError{ID: e.ID, CreatedAt: e.CreatedAt, Window: g.Window}
	}
	return nil
}
