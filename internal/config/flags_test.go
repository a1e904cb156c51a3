package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8000"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 8000, a.Port)
	assert.Equal(t, "localhost:8000", a.String())
}

func TestNetAddress_SetIP(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:80"))
	assert.Equal(t, "127.0.0.1:80", a.String())
}

func TestNetAddress_SetErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no port", "localhost"},
		{"bad port", "localhost:abc"},
		{"negative port", "localhost:-1"},
		{"bad host", "not-an-ip:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tt.input))
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
