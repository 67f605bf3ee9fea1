package paypolicystore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"quickpay-backend/models"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CommonPay) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.CommonPay, err error)
	GetLatest() (rec *dbmodels.CommonPay, err error)
	GetApprovedAsOf(date time.Time) (rec *dbmodels.CommonPay, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CommonPay) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.CommonPay{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.CommonPay, err error) {
	return i.first(i.db.Where("id = ?", id))
}

// GetLatest returns the most recently updated policy of any status.
func (i impl) GetLatest() (rec *dbmodels.CommonPay, err error) {
	return i.first(i.db.Order("updated_at desc"))
}

func (i impl) GetApprovedAsOf(date time.Time) (rec *dbmodels.CommonPay, err error) {
	return i.first(i.db.
		Where("status = ?", models.PayPolicyApproved).
		Where("effective_from <= ?", date).
		Order("effective_from desc, updated_at desc"))
}

func (i impl) first(tx *gorm.DB) (rec *dbmodels.CommonPay, err error) {
	err = tx.Model(dbmodels.CommonPay{}).
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
