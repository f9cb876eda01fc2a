// Package session tracks one interactive conversation: the transcript, the
// session/user/assistant counters, and the assemble → launch flow that turns
// a submitted cell into a backend call.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aislehq/aisle/pkg/chats/chat"
	"github.com/aislehq/aisle/pkg/chats/content"
	"github.com/aislehq/aisle/pkg/chats/message"
	"github.com/aislehq/aisle/pkg/chats/role"
	"github.com/aislehq/aisle/pkg/imaging"
	"github.com/aislehq/aisle/pkg/modeladapter"
)

// Session holds the conversation state for one interactive run.
// It is safe for concurrent use: the send goroutine appends while the UI
// loop reads counters for the status bar.
type Session struct {
	mu         sync.Mutex
	transcript *chat.Chat
	sessionN   int // bumped by Clear; the first conversation is 1
	userN      int
	aiN        int
}

// New creates an empty Session.
func New() *Session {
	return &Session{
		transcript: chat.New(),
		sessionN:   1,
	}
}

// Assemble builds the user message from the cell body and an optional image
// attachment, and appends it to the transcript. Nothing is appended when the
// body is blank or the attachment cannot be loaded.
func (s *Session) Assemble(text, imagePath string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("session: message body is empty")
	}

	parts := []content.Part{content.Text{Text: text}}

	if imagePath != "" {
		img, err := imaging.Load(imagePath)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		parts = append(parts, img)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript.Append(message.New(role.User, parts...))
	s.userN++

	return nil
}

// Launch sends the transcript to the completer and appends the assistant's
// reply. The transcript is unchanged when the call fails.
func (s *Session) Launch(ctx context.Context, completer modeladapter.Completer, opts modeladapter.Options) (message.Message, error) {
	s.mu.Lock()
	if s.transcript.Len() == 0 {
		s.mu.Unlock()
		return message.Message{}, fmt.Errorf("session: nothing to send")
	}
	snapshot := chat.New(s.transcript.Messages()...)
	s.mu.Unlock()

	reply, err := completer.Complete(ctx, snapshot, opts)
	if err != nil {
		return message.Message{}, fmt.Errorf("session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript.Append(reply)
	s.aiN++

	return reply, nil
}

// Clear wipes the transcript and starts the next conversation: the session
// counter is bumped and the user/assistant counters reset.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript.Clear()
	s.sessionN++
	s.userN = 0
	s.aiN = 0
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transcript.Messages()
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transcript.Len()
}

// SessionCount returns the 1-based conversation number.
func (s *Session) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionN
}

// UserCount returns the number of user messages in the current conversation.
func (s *Session) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userN
}

// AICount returns the number of assistant replies in the current conversation.
func (s *Session) AICount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.aiN
}

// Label returns the "<session>.<reply>" tag shown in reply headers.
func (s *Session) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fmt.Sprintf("%d.%d", s.sessionN, s.aiN)
}
