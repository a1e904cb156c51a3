package mailer

import (
	"context"
	"errors"
	"net/textproto"
	"testing"

	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySMTPError_Auth(t *testing.T) {
	for _, code := range []int{530, 534, 535} {
		err := classifySMTPError(&textproto.Error{Code: code, Msg: "authentication failed"})
		assert.ErrorIs(t, err, ErrAuthFailed, "code %d", code)
	}
}

func TestClassifySMTPError_Delivery(t *testing.T) {
	err := classifySMTPError(&textproto.Error{Code: 550, Msg: "mailbox unavailable"})
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	err = classifySMTPError(errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestBuildRFC822(t *testing.T) {
	payload := string(buildRFC822("noreply@example.com", Message{
		To:      "user@example.com",
		Subject: "Password Reset",
		Body:    "click the link",
	}))

	assert.Contains(t, payload, "From: noreply@example.com\r\n")
	assert.Contains(t, payload, "To: user@example.com\r\n")
	assert.Contains(t, payload, "Subject: Password Reset\r\n")
	assert.Contains(t, payload, "\r\n\r\nclick the link")
}

func TestNopMailer_Send(t *testing.T) {
	m := NewNopMailer(logger.Nop())
	require.NoError(t, m.Send(context.Background(), Message{To: "user@example.com"}))
}

func TestSMTPMailer_ContextCancelled(t *testing.T) {
	m := &smtpMailer{host: "smtp.invalid", port: 2525, from: "noreply@example.com", logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, Message{To: "user@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}
