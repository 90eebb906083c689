package feedback

import "testing"

func TestPublishAndExpire(t *testing.T) {
	var c Channel

	if _, ok := c.Visible(); ok {
		t.Fatal("new channel should have no visible event")
	}

	gen := c.Publish(Event{Message: "Great job!", Stars: 3})

	ev, ok := c.Visible()
	if !ok {
		t.Fatal("expected visible event after publish")
	}
	if ev.Message != "Great job!" || ev.Stars != 3 {
		t.Errorf("visible event = %+v", ev)
	}
	if ev.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}

	if !c.Expire(gen) {
		t.Error("expected current generation to expire the event")
	}
	if _, ok := c.Visible(); ok {
		t.Error("event still visible after expiry")
	}
}

func TestPublishPreemptsVisibleEvent(t *testing.T) {
	var c Channel

	genA := c.Publish(Event{Message: "A", Stars: 3})
	genB := c.Publish(Event{Message: "B", Stars: 5})

	// Only B is visible.
	ev, ok := c.Visible()
	if !ok || ev.Message != "B" {
		t.Fatalf("visible = %+v, %v; want B", ev, ok)
	}

	// A's timer fires late: it must not clear B.
	if c.Expire(genA) {
		t.Error("stale timer cleared a newer event")
	}
	if _, ok := c.Visible(); !ok {
		t.Fatal("B should still be visible after stale expiry")
	}

	// B expires after its own window, leaving nothing visible.
	if !c.Expire(genB) {
		t.Error("expected B's timer to clear B")
	}
	if _, ok := c.Visible(); ok {
		t.Error("residual visible event after B expired")
	}
}

func TestExpireIsIdempotent(t *testing.T) {
	var c Channel
	gen := c.Publish(Event{Message: "A"})

	if !c.Expire(gen) {
		t.Fatal("first expiry should succeed")
	}
	if c.Expire(gen) {
		t.Error("second expiry with same token should be a no-op")
	}
}

func TestClearInvalidatesOutstandingTimers(t *testing.T) {
	var c Channel
	gen := c.Publish(Event{Message: "A"})

	// View teardown.
	c.Clear()

	if _, ok := c.Visible(); ok {
		t.Error("event visible after Clear")
	}
	// The orphaned timer fires after teardown; it must do nothing.
	if c.Expire(gen) {
		t.Error("timer from a torn-down view cleared state")
	}

	// A fresh publish still works.
	c.Publish(Event{Message: "B"})
	if ev, ok := c.Visible(); !ok || ev.Message != "B" {
		t.Errorf("visible after re-publish = %+v, %v", ev, ok)
	}
}
