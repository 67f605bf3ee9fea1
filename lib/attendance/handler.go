package attendance

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"quickpay-backend/db"
	attendancestore "quickpay-backend/lib/attendance/store"
	employeestore "quickpay-backend/lib/employee/store"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	attendanceapimodels "quickpay-backend/models/api/attendance"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Mark(employeeID string, request attendanceapimodels.MarkAttendance) (attendanceapimodels.AttendanceView, error)
	List(employeeID string, filter apimodels.MonthFilter) ([]attendanceapimodels.AttendanceView, error)
	ListByUser(userID string, filter apimodels.MonthFilter) ([]attendanceapimodels.AttendanceView, error)
	UpsertLeaveDays(leave dbmodels.LeaveRequest) (days int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(attendancestore.NewInstance(db.DB), employeestore.NewInstance(db.DB))
}

// NewHandlerWithTx binds the handler to an open transaction.
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return NewInstance(attendancestore.NewInstance(tx), employeestore.NewInstance(tx))
}

func NewInstance(store attendancestore.Provider, employeeStore employeestore.Provider) Provider {
	return impl{
		store:         store,
		employeeStore: employeeStore,
		now:           time.Now,
	}
}

type impl struct {
	store         attendancestore.Provider
	employeeStore employeestore.Provider
	now           func() time.Time
}

func (i impl) Mark(employeeID string, request attendanceapimodels.MarkAttendance) (attendanceapimodels.AttendanceView, error) {
	logger := log.WithField("employee_id", employeeID)
	if _, err := i.getEmployee(employeeID); err != nil {
		return attendanceapimodels.AttendanceView{}, err
	}
	date, _ := apimodels.ParseDate(request.Date)
	rec, err := i.store.GetByEmployeeDate(employeeID, date)
	if err != nil {
		logger.WithError(err).Error("attendance loading failed")
		return attendanceapimodels.AttendanceView{}, err
	}
	if rec == nil {
		rec = &dbmodels.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     request.Status,
		}
		rec.ID, err = i.store.Create(*rec)
		if err != nil {
			logger.WithError(err).Error("attendance creation failed")
			return attendanceapimodels.AttendanceView{}, err
		}
		return rec.ToModel(), nil
	}
	if rec.Status == models.AttendanceLeave {
		return attendanceapimodels.AttendanceView{}, models.NewPreconditionError("day is covered by an approved leave")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"status": request.Status})
	if err != nil {
		logger.WithError(err).Error("attendance updating failed")
		return attendanceapimodels.AttendanceView{}, err
	}
	rec.Status = request.Status
	return rec.ToModel(), nil
}

func (i impl) List(employeeID string, filter apimodels.MonthFilter) ([]attendanceapimodels.AttendanceView, error) {
	if _, err := i.getEmployee(employeeID); err != nil {
		return nil, err
	}
	month, year := filter.Resolve(i.now())
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	list, err := i.store.GetList(employeeID, from, from.AddDate(0, 1, 0))
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("attendance list loading failed")
		return nil, err
	}
	result := make([]attendanceapimodels.AttendanceView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) ListByUser(userID string, filter apimodels.MonthFilter) ([]attendanceapimodels.AttendanceView, error) {
	employee, err := i.employeeStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, models.NewNotFoundError("employee profile not found")
	}
	return i.List(employee.ID, filter)
}

// UpsertLeaveDays writes one leave row per day of the request.
// Manually marked days are overwritten.
func (i impl) UpsertLeaveDays(leave dbmodels.LeaveRequest) (days int, err error) {
	leaveID := leave.ID
	logger := log.
		WithField("employee_id", leave.EmployeeID).
		WithField("leave_id", leaveID)
	err = leave.EachDay(func(day time.Time) error {
		rec, err := i.store.GetByEmployeeDate(leave.EmployeeID, day)
		if err != nil {
			return err
		}
		if rec == nil {
			_, err = i.store.Create(dbmodels.Attendance{
				EmployeeID: leave.EmployeeID,
				Date:       day,
				Status:     models.AttendanceLeave,
				LeaveID:    &leaveID,
			})
			if err != nil {
				return err
			}
			days++
			return nil
		}
		if rec.Status != models.AttendanceLeave {
			logger.
				WithField("date", apimodels.FormatDate(day)).
				WithField("previous_status", rec.Status).
				Warn("attendance overwritten by approved leave")
		}
		err = i.store.Update(rec.ID, map[string]interface{}{
			"status":   models.AttendanceLeave,
			"leave_id": leaveID,
		})
		if err != nil {
			return err
		}
		days++
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("leave days saving failed")
		return 0, err
	}
	return days, nil
}

func (i impl) getEmployee(employeeID string) (*dbmodels.Employee, error) {
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("employee loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("employee not found")
	}
	return rec, nil
}
