package smtp

import (
	"bytes"
	"testing"

	"github.com/emersion/go-sasl"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"quickpay-backend/models"
)

func TestSendWelcome(t *testing.T) {
	var sentTo []string
	var sentBody string
	i := impl{
		user:     "robot@quickpay.com",
		password: "secret",
		host:     "smtp.quickpay.com",
		port:     "587",
		from:     "no-reply@quickpay.com",
		send: func(addr string, auth sasl.Client, from string, to []string, msg *bytes.Buffer, tlsEnabled bool) error {
			require.Equal(t, "smtp.quickpay.com:587", addr)
			require.Equal(t, "no-reply@quickpay.com", from)
			sentTo = to
			sentBody = msg.String()
			return nil
		},
	}
	t.Run("renders credentials", func(t *testing.T) {
		err := i.SendWelcome("anna@mail.com", models.WelcomeMailData{
			FullName:    "Anna Smith",
			Username:    "anna123",
			OfficeMail:  "anna123@quickpay.com",
			Password:    "Xy7@abcd",
			CompanyName: "QuickPay",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"anna@mail.com"}, sentTo)
		require.Contains(t, sentBody, "Subject: Welcome to QuickPay")
		require.Contains(t, sentBody, "anna123@quickpay.com")
		require.Contains(t, sentBody, "Xy7@abcd")
	})
	t.Run("not configured is a no-op", func(t *testing.T) {
		called := false
		empty := impl{send: func(string, sasl.Client, string, []string, *bytes.Buffer, bool) error {
			called = true
			return nil
		}}
		require.NoError(t, empty.SendEMail("anna@mail.com", "hi", "body"))
		require.False(t, called)
	})
	t.Run("send failure is returned", func(t *testing.T) {
		failing := i
		failing.send = func(string, sasl.Client, string, []string, *bytes.Buffer, bool) error {
			return errors.New("connection refused")
		}
		require.Error(t, failing.SendEMail("anna@mail.com", "hi", "body"))
	})
}
