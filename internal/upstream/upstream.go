// Package upstream adapts external conversational services to a single
// reply-per-turn interface. Exactly one implementation is active per
// process, selected by configuration at startup.
package upstream

import "context"

// FallbackReply is returned when an upstream answers successfully but
// carries no usable text.
const FallbackReply = "Sorry, I don't have an answer for that right now."

// Turn is one user utterance plus its conversation context.
type Turn struct {
	// Message is the user's text, already validated non-empty.
	Message string
	// SessionID correlates turns of one conversation. Only the
	// session-oriented upstream uses it; it is opaque and never mutated.
	SessionID string
	// Locale is a BCP 47 tag; empty means the responder's default.
	Locale string
}

// Responder produces one reply for one turn.
type Responder interface {
	Reply(ctx context.Context, turn Turn) (string, error)
}

// Custom errors

// UpstreamError means the service was reached but returned an
// application-level failure. Message is safe to show to the caller.
type UpstreamError struct{ Message string }

func (e *UpstreamError) Error() string { return e.Message }

// TransportError means the service could not be reached at all
// (network failure, DNS, timeout).
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return "upstream unreachable: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ShapeError means the service answered 2xx with a body that does not
// match its own reply schema.
type ShapeError struct{ Message string }

func (e *ShapeError) Error() string { return e.Message }
