package leavestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"quickpay-backend/models"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.LeaveRequest) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.LeaveRequest, err error)
	GetListByEmployee(employeeID string) (list []dbmodels.LeaveRequest, err error)
	GetList(statuses []models.LeaveStatus) (list []dbmodels.LeaveRequest, err error)
	GetPaidInYear(employeeID string, year int, statuses []models.LeaveStatus) (list []dbmodels.LeaveRequest, err error)
	GetApprovedUnpaid(employeeID string, from, to time.Time) (list []dbmodels.LeaveRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.LeaveRequest) (string, error) {
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
		Model(&dbmodels.LeaveRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.LeaveRequest, err error) {
	err = i.db.Model(dbmodels.LeaveRequest{}).
		Preload("Employee.User").
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

func (i impl) GetListByEmployee(employeeID string) (list []dbmodels.LeaveRequest, err error) {
	err = i.db.Model(dbmodels.LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Order("start_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetList returns requests of the given statuses, all of them when statuses is empty.
func (i impl) GetList(statuses []models.LeaveStatus) (list []dbmodels.LeaveRequest, err error) {
	tx := i.db.Model(dbmodels.LeaveRequest{}).
		Preload("Employee.User")
	if len(statuses) != 0 {
		tx = tx.Where("status in (?)", statuses)
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

// GetPaidInYear returns sick and vacation requests starting in the year.
func (i impl) GetPaidInYear(employeeID string, year int, statuses []models.LeaveStatus) (list []dbmodels.LeaveRequest, err error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	err = i.db.Model(dbmodels.LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("leave_type in (?)", []models.LeaveType{models.LeaveSick, models.LeaveVacation}).
		Where("status in (?)", statuses).
		Where("start_date >= ? and start_date < ?", from, from.AddDate(1, 0, 0)).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetApprovedUnpaid returns approved unpaid requests starting in [from, to).
func (i impl) GetApprovedUnpaid(employeeID string, from, to time.Time) (list []dbmodels.LeaveRequest, err error) {
	err = i.db.Model(dbmodels.LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", models.LeaveUnpaid).
		Where("status = ?", models.LeaveApproved).
		Where("start_date >= ? and start_date < ?", from, to).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
