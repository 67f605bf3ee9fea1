package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Employee, err error)
	GetByUserID(userID string) (rec *dbmodels.Employee, err error)
	GetList() (list []dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	rec.User = nil
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
	return i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Employee, err error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetByUserID(userID string) (rec *dbmodels.Employee, err error) {
	return i.first(i.db.Where("user_id = ?", userID))
}

func (i impl) GetList() (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Preload("User").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) first(tx *gorm.DB) (rec *dbmodels.Employee, err error) {
	err = tx.Model(dbmodels.Employee{}).
		Preload("User").
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
