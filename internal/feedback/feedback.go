// Package feedback implements the transient success popup shown after a
// stage completion. At most one event is visible at a time; publishing
// pre-empts the current event, and a fixed display window retires the
// event with no user action.
package feedback

import "time"

// DisplayWindow is how long a published event stays visible before it
// auto-expires.
const DisplayWindow = 3 * time.Second

// Event is a single success notification.
type Event struct {
	Message   string
	Stars     int
	CreatedAt time.Time
}

// Channel owns the visible event slot. Expiry is driven by the caller's
// timer delivering the generation token back to Expire; a stale token
// (superseded publish, or a timer that outlived the view) can never
// clear a newer event.
type Channel struct {
	visible *Event
	gen     int
}

// Publish replaces any visible event and returns the generation token
// the expiry timer must present to clear it.
func (c *Channel) Publish(e Event) int {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	c.visible = &e
	c.gen++
	return c.gen
}

// Expire clears the visible event if gen is still current. Returns true
// if the event was cleared, false for a stale token.
func (c *Channel) Expire(gen int) bool {
	if gen != c.gen || c.visible == nil {
		return false
	}
	c.visible = nil
	return true
}

// Visible returns the currently visible event, if any.
func (c *Channel) Visible() (Event, bool) {
	if c.visible == nil {
		return Event{}, false
	}
	return *c.visible, true
}

// Clear removes any visible event and invalidates outstanding timers.
// Called on view teardown.
func (c *Channel) Clear() {
	c.visible = nil
	c.gen++
}
