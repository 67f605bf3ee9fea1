package feedbackapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"quickpay-backend/models"
)

type SubmitFeedback struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r SubmitFeedback) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	if len(r.Subject) > 255 {
		return errors.New("subject is too long")
	}
	return nil
}

type FeedbackView struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Username  string                `json:"username,omitempty"`
	Subject   string                `json:"subject"`
	Message   string                `json:"message"`
	Status    models.FeedbackStatus `json:"status"`
	CreatedAt string                `json:"created_at"`
}
