package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"quickpay-backend/models"
	notificationapimodels "quickpay-backend/models/api/notification"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"index"`
	EventID string `gorm:"index"`
	Message string `gorm:"type:text"`
	IsRead  bool
}

func (r Notification) ToModel() notificationapimodels.NotificationView {
	return notificationapimodels.NotificationView{
		ID:        r.ID,
		Message:   r.Message,
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// NotificationEvent is an outbox row, exactly one of UserID, Role or Roles is set.
type NotificationEvent struct {
	BaseModel
	UserID       *string
	Role         *models.UserRole `gorm:"type:varchar(50)"`
	Roles        pq.StringArray   `gorm:"type:text[]"`
	Message      string           `gorm:"type:text"`
	Dispatched   bool             `gorm:"index"`
	DispatchedAt *time.Time
}
