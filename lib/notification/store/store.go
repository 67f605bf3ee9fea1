package notificationstore

import (
	"time"

	"gorm.io/gorm"
	notificationapimodels "quickpay-backend/models/api/notification"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	CreateEvent(rec dbmodels.NotificationEvent) (string, error)
	GetPendingEvents(limit int) (list []dbmodels.NotificationEvent, err error)
	// CompleteEvent stores the fanned out notifications and marks the event dispatched.
	CompleteEvent(eventID string, recs []dbmodels.Notification, at time.Time) error
	GetList(userID string, filter notificationapimodels.ListFilter) (list []dbmodels.Notification, err error)
	MarkRead(userID, id string) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateEvent(rec dbmodels.NotificationEvent) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetPendingEvents(limit int) (list []dbmodels.NotificationEvent, err error) {
	err = i.db.Model(dbmodels.NotificationEvent{}).
		Where("dispatched = ?", false).
		Order("created_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CompleteEvent(eventID string, recs []dbmodels.Notification, at time.Time) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if len(recs) > 0 {
			if err := tx.Create(&recs).Error; err != nil {
				return err
			}
		}
		return tx.Model(&dbmodels.NotificationEvent{}).
			Where("id = ?", eventID).
			Updates(map[string]interface{}{
				"dispatched":    true,
				"dispatched_at": at,
			}).
			Error
	})
}

func (i impl) GetList(userID string, filter notificationapimodels.ListFilter) (list []dbmodels.Notification, err error) {
	tx := i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID)
	if filter.UnreadOnly {
		tx = tx.Where("is_read = ?", false)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(userID, id string) (found bool, err error) {
	tx := i.db.Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("is_read", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
