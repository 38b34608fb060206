package complaints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "bob", NameFromEmail("bob@example.com"))
	assert.Equal(t, "", NameFromEmail("@example.com"))
	assert.Equal(t, "plain", NameFromEmail("plain"))
	assert.Equal(t, "a", NameFromEmail("a@b@c"))
}

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	_, ok := store.Current()
	assert.False(t, ok)

	_, err := store.Update("x", "y")
	assert.ErrorIs(t, err, ErrNoSession)

	store.Begin("bob", "bob@example.com")
	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, Session{Name: "bob", Email: "bob@example.com"}, current)

	updated, err := store.Update("Robert", "robert@example.com")
	require.NoError(t, err)
	assert.Equal(t, "robert@example.com", updated.Email)

	store.End()
	_, ok = store.Current()
	assert.False(t, ok)
}

func TestSessionAvatarInitial(t *testing.T) {
	assert.Equal(t, "B", Session{Name: "bob"}.AvatarInitial())
	assert.Equal(t, "É", Session{Name: "élodie"}.AvatarInitial())
	assert.Equal(t, "", Session{}.AvatarInitial())
}
