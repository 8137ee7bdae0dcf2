// Live-region announcement state machine in Uplift.
// Mirrors the coordinator contract rendered client-side: one visible message,
// one pending clear, and a forced content change on every announcement so
// assistive technology re-announces identical text.

package liveregion

import (
	"sync"
	"time"
)

// How long an announcement stays visible before clearing.
const DefaultClearDelay = 3 * time.Second

// Announcer owns the live-region state of one rendering surface.
// At most one clear is ever pending, a new announcement cancels the prior
// pending clear and installs a new one.
type Announcer struct {
	mu         sync.Mutex
	message    string
	clearDelay time.Duration
	clearTimer *time.Timer
	notify     func(message string)
}

// NewAnnouncer returns an announcer which reports every state change through
// notify. notify runs under the announcer's lock and must not call back in.
func NewAnnouncer(clearDelay time.Duration, notify func(message string)) *Announcer {
	if clearDelay <= 0 {
		clearDelay = DefaultClearDelay
	}
	return &Announcer{clearDelay: clearDelay, notify: notify}
}

// Announce replaces the current message even if identical in content.
// The region is cleared to empty first and then set, the two-phase transition
// guarantees assistive technology detects a change. A single clear is
// scheduled afterwards, replacing any previously pending one.
func (a *Announcer) Announce(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.clearTimer != nil {
		a.clearTimer.Stop()
		a.clearTimer = nil
	}
	a.set("")
	a.set(message)
	a.clearTimer = time.AfterFunc(a.clearDelay, a.clearExpired)
}

// Message returns the currently visible announcement text.
func (a *Announcer) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// Stop cancels any pending clear. Used when the surface goes away.
func (a *Announcer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.clearTimer != nil {
		a.clearTimer.Stop()
		a.clearTimer = nil
	}
}

func (a *Announcer) clearExpired() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clearTimer = nil
	a.set("")
}

// set mutates the region text and reports the change. Callers hold the lock.
func (a *Announcer) set(message string) {
	a.message = message
	if a.notify != nil {
		a.notify(message)
	}
}
