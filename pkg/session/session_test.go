package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aislehq/aisle/pkg/chats/chat"
	"github.com/aislehq/aisle/pkg/chats/message"
	"github.com/aislehq/aisle/pkg/chats/role"
	"github.com/aislehq/aisle/pkg/modeladapter"
	"github.com/aislehq/aisle/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter returns a canned reply and records the conversation it saw.
type fakeCompleter struct {
	reply message.Message
	err   error

	gotMessages int
	gotOpts     modeladapter.Options
}

func (f *fakeCompleter) Complete(_ context.Context, c *chat.Chat, opts modeladapter.Options) (message.Message, error) {
	f.gotMessages = c.Len()
	f.gotOpts = opts

	if f.err != nil {
		return message.Message{}, f.err
	}
	return f.reply, nil
}

func TestAssemble(t *testing.T) {
	s := session.New()

	require.NoError(t, s.Assemble("hello", ""))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.UserCount())
	assert.Equal(t, "hello", s.Messages()[0].TextContent())
}

func TestAssemble_EmptyBody(t *testing.T) {
	s := session.New()

	err := s.Assemble("  \n ", "")
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.UserCount())
}

func TestAssemble_WithImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50}, 0o600))

	s := session.New()
	require.NoError(t, s.Assemble("what is this?", path))

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].Images(), 1)
	assert.Equal(t, "image/png", msgs[0].Images()[0].MediaType)
}

func TestAssemble_BadImageAbortsCell(t *testing.T) {
	s := session.New()

	err := s.Assemble("look at this", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Equal(t, 0, s.Len(), "transcript must gain no message on attachment failure")
}

func TestLaunch(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Assemble("hello", ""))

	fc := &fakeCompleter{reply: message.NewText(role.Assistant, "hi!")}

	reply, err := s.Launch(context.Background(), fc, modeladapter.Options{Model: "llama3"})
	require.NoError(t, err)

	assert.Equal(t, "hi!", reply.TextContent())
	assert.Equal(t, 1, fc.gotMessages)
	assert.Equal(t, "llama3", fc.gotOpts.Model)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.AICount())
	assert.Equal(t, "1.1", s.Label())
}

func TestLaunch_EmptyTranscript(t *testing.T) {
	s := session.New()

	_, err := s.Launch(context.Background(), &fakeCompleter{}, modeladapter.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to send")
}

func TestLaunch_CompleterError(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Assemble("hello", ""))

	fc := &fakeCompleter{err: errors.New("connection refused")}

	_, err := s.Launch(context.Background(), fc, modeladapter.Options{})
	require.Error(t, err)
	assert.Equal(t, 1, s.Len(), "failed call must not grow the transcript")
	assert.Equal(t, 0, s.AICount())
}

func TestClear(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Assemble("hello", ""))

	fc := &fakeCompleter{reply: message.NewText(role.Assistant, "hi!")}
	_, err := s.Launch(context.Background(), fc, modeladapter.Options{})
	require.NoError(t, err)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2, s.SessionCount())
	assert.Equal(t, 0, s.UserCount())
	assert.Equal(t, 0, s.AICount())
	assert.Equal(t, "2.0", s.Label())
}
