// Package chat implements the widget side of the chat endpoint: an
// append-only conversation with the placeholder-then-patch turn
// lifecycle, and a client that submits one turn at a time.
package chat

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Sender classifies a message's author.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderBot   Sender = "bot"
	SenderError Sender = "error"
)

// DefaultWelcome seeds a new conversation so the widget never opens on
// an empty pane.
const DefaultWelcome = "Hey! I'm the portfolio assistant. Ask me anything about skills, projects, or experience."

// Message is one entry in a conversation. Messages are only appended;
// a bot placeholder (Content empty, Complete false) is patched in place
// when its turn resolves.
type Message struct {
	ID       string
	Sender   Sender
	Content  string
	Complete bool
}

var (
	// ErrEmptyMessage rejects whitespace-only input before any state change.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrTurnInFlight rejects a submit while the previous turn is unresolved.
	ErrTurnInFlight = errors.New("a turn is already in flight")
	// errStaleTurn is returned when a resolution arrives for a
	// placeholder that is no longer the pending one.
	errStaleTurn = errors.New("turn is no longer pending")
)

// Conversation owns one ordered message list and at most one pending
// turn. The session id is generated once and reused for every turn.
type Conversation struct {
	mu        sync.Mutex
	sessionID string
	messages  []Message
	pendingID string
}

// NewConversation creates a conversation seeded with a welcome bot
// message. Pass an empty welcome to start blank.
func NewConversation(welcome string) *Conversation {
	c := &Conversation{sessionID: uuid.NewString()}
	if welcome != "" {
		c.messages = append(c.messages, Message{
			ID:       uuid.NewString(),
			Sender:   SenderBot,
			Content:  welcome,
			Complete: true,
		})
	}
	return c
}

// SessionID is the conversation's stable correlation token.
func (c *Conversation) SessionID() string { return c.sessionID }

// Messages returns a snapshot of the conversation in display order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Awaiting reports whether a turn is unresolved.
func (c *Conversation) Awaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingID != ""
}

// begin validates the input and, in one step, appends the user message
// plus the bot placeholder. It returns the placeholder id the caller
// must later resolve or fail.
func (c *Conversation) begin(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pendingID != "" {
		return "", ErrTurnInFlight
	}

	c.messages = append(c.messages, Message{
		ID:       uuid.NewString(),
		Sender:   SenderUser,
		Content:  trimmed,
		Complete: true,
	})

	placeholderID := uuid.NewString()
	c.messages = append(c.messages, Message{
		ID:     placeholderID,
		Sender: SenderBot,
	})
	c.pendingID = placeholderID
	return placeholderID, nil
}

// resolve patches the pending placeholder with the reply.
func (c *Conversation) resolve(placeholderID, reply string) error {
	return c.patch(placeholderID, SenderBot, reply)
}

// fail converts the pending placeholder into a visible error entry.
func (c *Conversation) fail(placeholderID, reason string) error {
	return c.patch(placeholderID, SenderError, reason)
}

func (c *Conversation) patch(placeholderID string, sender Sender, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pendingID != placeholderID {
		return errStaleTurn
	}

	for i := range c.messages {
		if c.messages[i].ID == placeholderID {
			c.messages[i].Sender = sender
			c.messages[i].Content = content
			c.messages[i].Complete = true
			break
		}
	}
	c.pendingID = ""
	return nil
}
