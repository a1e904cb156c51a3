package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUser_JSONShape(t *testing.T) {
	referrer := int64(7)
	token := "reset-token"
	expiry := time.Now().Add(time.Hour)
	u := User{
		UserID:              1,
		Username:            "john",
		Email:               "john@example.com",
		PasswordHash:        "bcrypt-hash",
		ReferralCode:        "c0ffee1234567890",
		ReferredBy:          &referrer,
		ReferralCount:       3,
		RewardPoints:        30,
		IsPremium:           true,
		ResetToken:          &token,
		ResetTokenExpiresAt: &expiry,
		CreatedAt:           time.Now(),
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"username", "email", "referralCode", "referralCount", "rewards", "isPremium", "createdAt"} {
		if _, ok := got[key]; !ok {
			t.Errorf("expected key %q in serialized user, got %v", key, got)
		}
	}

	// credential and persistence-only fields never leave the model
	for _, key := range []string{"user_id", "password_hash", "passwordHash", "reset_token", "resetToken", "referred_by", "referredBy"} {
		if _, ok := got[key]; ok {
			t.Errorf("key %q must not be serialized", key)
		}
	}
}
