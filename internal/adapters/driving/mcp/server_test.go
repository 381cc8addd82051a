package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil persister returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingPersister)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{Persister: newMockPersister()}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("with history creates server", func(t *testing.T) {
		ports := &Ports{Persister: newMockPersister(), History: &mockHistoryService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil persister returns error", func(t *testing.T) {
		ports := &Ports{History: &mockHistoryService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingPersister)
	})

	t.Run("persister only is valid", func(t *testing.T) {
		ports := &Ports{Persister: newMockPersister()}
		assert.NoError(t, ports.Validate())
	})
}
