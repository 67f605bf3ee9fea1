package attendancestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Attendance) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByEmployeeDate(employeeID string, date time.Time) (rec *dbmodels.Attendance, err error)
	GetList(employeeID string, from, to time.Time) (list []dbmodels.Attendance, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Attendance) (string, error) {
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
		Model(&dbmodels.Attendance{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByEmployeeDate(employeeID string, date time.Time) (rec *dbmodels.Attendance, err error) {
	err = i.db.Model(dbmodels.Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
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

// GetList returns the rows of [from, to) ordered by date.
func (i impl) GetList(employeeID string, from, to time.Time) (list []dbmodels.Attendance, err error) {
	err = i.db.Model(dbmodels.Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("date >= ? and date < ?", from, to).
		Order("date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
