package chat_test

import (
	"testing"

	"github.com/aislehq/aisle/pkg/chats/chat"
	"github.com/aislehq/aisle/pkg/chats/message"
	"github.com/aislehq/aisle/pkg/chats/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndAccess(t *testing.T) {
	c := chat.New()
	assert.Equal(t, 0, c.Len())

	c.Append(message.NewText(role.User, "hello"))
	c.Append(message.NewText(role.Assistant, "hi there"))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, role.User, c.At(0).Role)
	assert.Equal(t, "hello", c.At(0).TextContent())

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, role.Assistant, last.Role)
	assert.Equal(t, "hi there", last.TextContent())
}

func TestLastEmpty(t *testing.T) {
	c := chat.New()

	_, ok := c.Last()
	assert.False(t, ok)
}

func TestMessagesReturnsCopy(t *testing.T) {
	c := chat.New(message.NewText(role.User, "one"))

	msgs := c.Messages()
	msgs[0] = message.NewText(role.User, "mutated")

	assert.Equal(t, "one", c.At(0).TextContent())
}

func TestEachStopsEarly(t *testing.T) {
	c := chat.New(
		message.NewText(role.User, "a"),
		message.NewText(role.Assistant, "b"),
		message.NewText(role.User, "c"),
	)

	var visited int
	c.Each(func(i int, _ message.Message) bool {
		visited++
		return i < 1
	})

	assert.Equal(t, 2, visited)
}

func TestClear(t *testing.T) {
	c := chat.New(
		message.NewText(role.User, "a"),
		message.NewText(role.Assistant, "b"),
	)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Last()
	assert.False(t, ok)
}
