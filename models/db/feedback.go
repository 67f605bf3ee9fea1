package dbmodels

import (
	"time"

	"quickpay-backend/models"
	feedbackapimodels "quickpay-backend/models/api/feedback"
)

type Feedback struct {
	BaseModel
	UserID  string                `gorm:"index"`
	User    *User                 `gorm:"foreignKey:UserID"`
	Subject string                `gorm:"type:varchar(255)"`
	Message string                `gorm:"type:text"`
	Status  models.FeedbackStatus `gorm:"type:varchar(20);index"`
}

func (r Feedback) ToModel() feedbackapimodels.FeedbackView {
	result := feedbackapimodels.FeedbackView{
		ID:        r.ID,
		UserID:    r.UserID,
		Subject:   r.Subject,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.User != nil {
		result.Username = r.User.Username
	}
	return result
}
