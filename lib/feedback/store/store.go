package feedbackstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"quickpay-backend/models"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Feedback) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Feedback, err error)
	GetList(userID string) (list []dbmodels.Feedback, err error)
	CountByStatus(status models.FeedbackStatus) (int64, error)
	CountExceptStatus(status models.FeedbackStatus) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Feedback) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Feedback{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Feedback, err error) {
	err = i.db.Model(dbmodels.Feedback{}).
		Preload("User").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// GetList returns feedback of userID, all feedback when userID is empty.
func (i impl) GetList(userID string) (list []dbmodels.Feedback, err error) {
	tx := i.db.Model(dbmodels.Feedback{}).
		Preload("User")
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountExceptStatus(status models.FeedbackStatus) (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Feedback{}).
		Where("status <> ?", status).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) CountByStatus(status models.FeedbackStatus) (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Feedback{}).
		Where("status = ?", status).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
