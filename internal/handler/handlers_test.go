package handler

import (
	"testing"

	"github.com/mzholudev/go-referral-hub/internal/config"
	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTP(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: "localhost:8000"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressConfigured(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}
