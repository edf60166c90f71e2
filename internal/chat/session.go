package chat

import (
	"context"
	"errors"
	"strings"
)

// Session drives one conversation against one backend: exactly one
// network call per valid submit, at most one turn in flight.
type Session struct {
	conv   *Conversation
	client *Client
}

func NewSession(conv *Conversation, client *Client) *Session {
	return &Session{conv: conv, client: client}
}

func (s *Session) Conversation() *Conversation { return s.conv }

// Submit runs one full turn. Whitespace-only input is a no-op. A submit
// while the previous turn is unresolved returns ErrTurnInFlight without
// touching the conversation. Every other outcome, including ctx
// cancellation mid-flight, resolves the placeholder before returning —
// the conversation never stays stuck awaiting.
func (s *Session) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	placeholderID, err := s.conv.begin(text)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			return nil
		}
		return err
	}

	reply, err := s.client.Send(ctx, s.conv.SessionID(), text)
	if err != nil {
		s.conv.fail(placeholderID, turnFailureMessage(err))
		return nil
	}

	s.conv.resolve(placeholderID, reply)
	return nil
}

// turnFailureMessage maps a send failure to conversation copy: the
// proxy's own error text when it produced one, generic connectivity
// copy for everything else.
func turnFailureMessage(err error) string {
	var replyErr *ReplyError
	if errors.As(err, &replyErr) {
		return replyErr.Message
	}
	return ConnectivityMessage
}
