package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError reports a 429 from the vendor. RetryAfter is the
// vendor's suggested wait, zero when it gave none.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("model rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// BadReplyError reports a reply that was not the JSON the schema asked
// for. Raw keeps the offending content for the event log.
type BadReplyError struct {
	Raw json.RawMessage
	Err error
}

func (e *BadReplyError) Error() string {
	return fmt.Sprintf("bad model reply: %v", e.Err)
}

func (e *BadReplyError) Unwrap() error { return e.Err }

// UnavailableError reports that the vendor could not be reached or
// answered with a server error. Sparky falls back to canned lines when
// this keeps happening.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "model provider unavailable"
	}
	return fmt.Sprintf("model provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
