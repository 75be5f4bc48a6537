package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Manager(t *testing.T) {
	m := NewSHA256Manager()

	hash, err := m.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", hash)

	ok, err := m.Check(hash, "password")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Check(hash, "Password")
	require.NoError(t, err)
	assert.False(t, ok)
}
