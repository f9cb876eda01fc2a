package role_test

import (
	"testing"

	"github.com/aislehq/aisle/pkg/chats/role"
	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, role.System.Valid())
	assert.True(t, role.User.Valid())
	assert.True(t, role.Assistant.Valid())
	assert.False(t, role.Role("tool").Valid())
	assert.False(t, role.Role("").Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "assistant", role.Assistant.String())
}
