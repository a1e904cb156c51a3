package service

import (
	"github.com/mzholudev/go-referral-hub/internal/config"
	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/mailer"
	"github.com/mzholudev/go-referral-hub/internal/store"
)

// Services aggregates all business-logic components handed to the
// transport layer.
type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	RewardsService       RewardsService
	ReferralService      ReferralService
}

// NewServices wires every service to the shared storages, mail
// collaborator, and configuration.
func NewServices(storages *store.Storages, m mailer.Mailer, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, m, cfg.App, logger),
		RewardsService:       NewRewardsService(storages.UserRepository, logger),
		ReferralService:      NewReferralService(storages.UserRepository, logger),
	}
}
