package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"quickpay-backend/models"
	usersapimodels "quickpay-backend/models/api/users"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByUsername(username string) (rec *dbmodels.User, err error)
	FindByUsernameAndPhone(username, phone string) (rec *dbmodels.User, err error)
	ExistByUsername(username string) (bool, error)
	GetList(filter usersapimodels.UserFilter) (list []dbmodels.User, err error)
	GetActiveByRole(role models.UserRole) (list []dbmodels.User, err error)
	GetWithoutEmployeeProfile() (list []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	return i.first(i.db.Where("id = ?", userID))
}

func (i impl) FindByUsername(username string) (rec *dbmodels.User, err error) {
	return i.first(i.db.Where("username = ?", username))
}

func (i impl) FindByUsernameAndPhone(username, phone string) (rec *dbmodels.User, err error) {
	return i.first(i.db.
		Where("username = ?", username).
		Where("phone_number = ?", phone))
}

func (i impl) ExistByUsername(username string) (bool, error) {
	rec, err := i.FindByUsername(username)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

func (i impl) GetList(filter usersapimodels.UserFilter) (list []dbmodels.User, err error) {
	tx := i.db.Model(dbmodels.User{}).
		Where("is_superuser = ?", false).
		Where("role <> ?", models.AdminRole)
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	switch filter.Status {
	case models.UserStatusActive:
		tx = tx.Where("is_active = ?", true)
	case models.UserStatusBlocked:
		tx = tx.Where("is_active = ?", false)
	}
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetActiveByRole(role models.UserRole) (list []dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("is_active = ?", true).
		Where("role = ?", role).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetWithoutEmployeeProfile() (list []dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("role = ?", models.EmployeeRole).
		Where("is_active = ?", true).
		Where("id not in (select user_id from employees)").
		Order("username").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) first(tx *gorm.DB) (rec *dbmodels.User, err error) {
	err = tx.Model(dbmodels.User{}).
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
