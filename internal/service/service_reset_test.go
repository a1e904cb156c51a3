// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Zholudev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/mailer"
	"github.com/mzholudev/go-referral-hub/internal/mock"
	"github.com/mzholudev/go-referral-hub/internal/store"
	"github.com/mzholudev/go-referral-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestResetService(t *testing.T) (PasswordResetService, *mock.MockUserRepository, *mock.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	m := mock.NewMockMailer(ctrl)

	return NewPasswordResetService(repo, m, testAppConfig(), logger.Nop()), repo, m
}

// ─────────────────────────────────────────────
// RequestReset
// ─────────────────────────────────────────────

func TestPasswordResetService_RequestReset_Success(t *testing.T) {
	svc, repo, m := newTestResetService(t)

	user := models.User{UserID: 42, Email: "john@example.com"}
	var storedToken string

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(user, nil)
	repo.EXPECT().
		SetResetToken(gomock.Any(), int64(42), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, token string, expiresAt time.Time) error {
			// 20 random bytes hex-encoded
			assert.Len(t, token, 40)
			assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
			storedToken = token
			return nil
		})
	m.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mailer.Message) error {
			assert.Equal(t, "john@example.com", msg.To)
			assert.Equal(t, "Password Reset", msg.Subject)
			assert.True(t, strings.Contains(msg.Body, storedToken), "mail body must carry the stored token")
			return nil
		})

	err := svc.RequestReset(context.Background(), "john@example.com")

	require.NoError(t, err)
}

func TestPasswordResetService_RequestReset_UnknownEmail(t *testing.T) {
	svc, repo, _ := newTestResetService(t)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "nobody@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.RequestReset(context.Background(), "nobody@example.com")

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestPasswordResetService_RequestReset_EmptyEmail(t *testing.T) {
	svc, _, _ := newTestResetService(t)

	err := svc.RequestReset(context.Background(), "")

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPasswordResetService_RequestReset_MailDeliveryFailed(t *testing.T) {
	svc, repo, m := newTestResetService(t)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 42, Email: "john@example.com"}, nil)
	repo.EXPECT().
		SetResetToken(gomock.Any(), int64(42), gomock.Any(), gomock.Any()).
		Return(nil)
	m.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(mailer.ErrDeliveryFailed)

	err := svc.RequestReset(context.Background(), "john@example.com")

	// the token stays stored; only the delivery failure is reported
	require.ErrorIs(t, err, mailer.ErrDeliveryFailed)
}

func TestPasswordResetService_RequestReset_StoringTokenFailed(t *testing.T) {
	svc, repo, _ := newTestResetService(t)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 42, Email: "john@example.com"}, nil)
	repo.EXPECT().
		SetResetToken(gomock.Any(), int64(42), gomock.Any(), gomock.Any()).
		Return(errRepository)

	err := svc.RequestReset(context.Background(), "john@example.com")

	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// CompleteReset
// ─────────────────────────────────────────────

func TestPasswordResetService_CompleteReset_Success(t *testing.T) {
	svc, repo, _ := newTestResetService(t)

	repo.EXPECT().
		CompletePasswordReset(gomock.Any(), "deadbeef", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, passwordHash string) (models.User, error) {
			// the service hands the store a bcrypt hash, never the plaintext
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("newsecret")))
			return models.User{UserID: 42}, nil
		})

	user, err := svc.CompleteReset(context.Background(), "deadbeef", "newsecret")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
}

func TestPasswordResetService_CompleteReset_InvalidToken(t *testing.T) {
	svc, repo, _ := newTestResetService(t)

	repo.EXPECT().
		CompletePasswordReset(gomock.Any(), "spent-or-expired", gomock.Any()).
		Return(models.User{}, store.ErrResetTokenInvalid)

	_, err := svc.CompleteReset(context.Background(), "spent-or-expired", "newsecret")

	require.ErrorIs(t, err, store.ErrResetTokenInvalid)
}

func TestPasswordResetService_CompleteReset_InvalidData(t *testing.T) {
	svc, _, _ := newTestResetService(t)

	tests := []struct {
		name        string
		token       string
		newPassword string
	}{
		{name: "empty token", token: "", newPassword: "newsecret"},
		{name: "short password", token: "deadbeef", newPassword: "12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompleteReset(context.Background(), tt.token, tt.newPassword)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}
