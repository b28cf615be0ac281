package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsu-datastore/datastore/pkg/types"
)

func TestAddUser(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddUser("alice", "secret")
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = s.AddUser("alice", "other")
	assert.ErrorIs(t, err, types.ErrUserExists)

	_, err = s.AddUser("", "secret")
	assert.ErrorIs(t, err, types.ErrInvalidUsername)

	_, err = s.AddUser("bob", "")
	assert.ErrorIs(t, err, types.ErrInvalidPassword)
}

func TestCheckCredentials(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddUser("alice", "secret")
	require.NoError(t, err)

	ok, err := s.CheckCredentials("alice", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CheckCredentials("alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CheckCredentials("nobody", "secret")
	require.NoError(t, err)
	assert.False(t, ok, "unknown username is a failed login, not an error")
}

func TestSetPassword(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddUser("alice", "old")
	require.NoError(t, err)

	require.NoError(t, s.SetPassword("alice", "new"))

	ok, err := s.CheckCredentials("alice", "new")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CheckCredentials("alice", "old")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, s.SetPassword("nobody", "pw"), types.ErrUnknownUser)
	assert.ErrorIs(t, s.SetPassword("alice", ""), types.ErrInvalidPassword)
}

func TestHashPassword(t *testing.T) {
	// Digest format existing databases were written with.
	assert.Equal(t,
		"2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		hashPassword("secret"))
}
