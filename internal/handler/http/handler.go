package http

import (
	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
