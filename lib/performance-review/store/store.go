package reviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PerformanceReview) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.PerformanceReview, err error)
	GetListByEmployee(employeeID string) (list []dbmodels.PerformanceReview, err error)
	GetLatest(employeeID string) (rec *dbmodels.PerformanceReview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PerformanceReview) (string, error) {
	rec.Employee = nil
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
		Model(&dbmodels.PerformanceReview{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.PerformanceReview, err error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetListByEmployee(employeeID string) (list []dbmodels.PerformanceReview, err error) {
	err = i.db.Model(dbmodels.PerformanceReview{}).
		Preload("Employee.User").
		Where("employee_id = ?", employeeID).
		Order("review_date desc, created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetLatest orders by review date, then by creation time.
func (i impl) GetLatest(employeeID string) (rec *dbmodels.PerformanceReview, err error) {
	return i.first(i.db.
		Where("employee_id = ?", employeeID).
		Order("review_date desc, created_at desc"))
}

func (i impl) first(tx *gorm.DB) (rec *dbmodels.PerformanceReview, err error) {
	err = tx.Model(dbmodels.PerformanceReview{}).
		Preload("Employee.User").
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
