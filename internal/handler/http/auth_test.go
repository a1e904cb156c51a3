// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Zholudev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mzholudev/go-referral-hub/internal/mailer"
	"github.com/mzholudev/go-referral-hub/internal/service"
	"github.com/mzholudev/go-referral-hub/internal/store"
	"github.com/mzholudev/go-referral-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "john", req.Username)
			return models.User{UserID: 42, Username: req.Username}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"john","email":"john@example.com","password":"secret123"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestRegister_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "invalid data", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantMessage: "Invalid data provided"},
		{name: "duplicate user", serviceErr: store.ErrUserAlreadyExists, wantStatus: http.StatusBadRequest, wantMessage: "User already exists"},
		{name: "unknown referral code", serviceErr: service.ErrInvalidReferralCode, wantStatus: http.StatusBadRequest, wantMessage: "Invalid referral code"},
		{name: "store failure", serviceErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantMessage: "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
				strings.NewReader(`{"username":"john","email":"john@example.com","password":"secret123"}`))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 42, Email: req.Email, ReferralCode: "c0ffee00c0ffee00"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
		referralLinkFn: func(user models.User) string {
			return "https://example.com/register?referral=" + user.ReferralCode
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"john@example.com","password":"secret123"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, "https://example.com/register?referral=c0ffee00c0ffee00", resp.ReferralLink)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	for _, serviceErr := range []error{service.ErrInvalidCredentials, service.ErrInvalidDataProvided} {
		auth := &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
				return models.User{}, serviceErr
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"john@example.com","password":"wrong"}`))
		rec := httptest.NewRecorder()

		h.login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	}
}

func TestLogin_TokenCreationFailed(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{UserID: 42}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"john@example.com","password":"secret123"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// forgotPassword
// ─────────────────────────────────────────────

func TestForgotPassword_Success(t *testing.T) {
	reset := &mockPasswordResetService{
		requestResetFn: func(_ context.Context, email string) error {
			assert.Equal(t, "john@example.com", email)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{PasswordResetService: reset})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
		strings.NewReader(`{"email":"john@example.com"}`))
	rec := httptest.NewRecorder()

	h.forgotPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password reset email sent"}`, rec.Body.String())
}

func TestForgotPassword_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "unknown email", serviceErr: store.ErrNoUserWasFound, wantStatus: http.StatusBadRequest, wantMessage: "User not found"},
		{name: "mail auth failure", serviceErr: mailer.ErrAuthFailed, wantStatus: http.StatusInternalServerError, wantMessage: "Email authentication failed. Check your email credentials."},
		{name: "mail delivery failure", serviceErr: mailer.ErrDeliveryFailed, wantStatus: http.StatusInternalServerError, wantMessage: "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset := &mockPasswordResetService{
				requestResetFn: func(_ context.Context, _ string) error {
					return tt.serviceErr
				},
			}
			h := newTestHandler(t, &service.Services{PasswordResetService: reset})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
				strings.NewReader(`{"email":"john@example.com"}`))
			rec := httptest.NewRecorder()

			h.forgotPassword(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// ─────────────────────────────────────────────
// resetPassword
// ─────────────────────────────────────────────

func TestResetPassword_Success(t *testing.T) {
	reset := &mockPasswordResetService{
		completeResetFn: func(_ context.Context, token, newPassword string) (models.User, error) {
			assert.Equal(t, "deadbeef", token)
			assert.Equal(t, "newsecret", newPassword)
			return models.User{UserID: 42}, nil
		},
	}
	h := newTestHandler(t, &service.Services{PasswordResetService: reset})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password",
		strings.NewReader(`{"token":"deadbeef","newPassword":"newsecret"}`))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password reset successfully"}`, rec.Body.String())
}

func TestResetPassword_InvalidToken(t *testing.T) {
	reset := &mockPasswordResetService{
		completeResetFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrResetTokenInvalid
		},
	}
	h := newTestHandler(t, &service.Services{PasswordResetService: reset})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password",
		strings.NewReader(`{"token":"spent","newPassword":"newsecret"}`))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestResetPassword_InvalidData(t *testing.T) {
	reset := &mockPasswordResetService{
		completeResetFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, &service.Services{PasswordResetService: reset})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password",
		strings.NewReader(`{"token":"","newPassword":"123"}`))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid data provided")
}
