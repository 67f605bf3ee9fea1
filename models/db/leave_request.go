package dbmodels

import (
	"time"

	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	leaveapimodels "quickpay-backend/models/api/leave"
)

type LeaveRequest struct {
	BaseModel
	EmployeeID  string             `gorm:"index"`
	Employee    *Employee          `gorm:"foreignKey:EmployeeID"`
	LeaveType   models.LeaveType   `gorm:"type:varchar(20)"`
	StartDate   time.Time          `gorm:"type:date;index"`
	EndDate     time.Time          `gorm:"type:date"`
	Reason      string             `gorm:"type:text"`
	Status      models.LeaveStatus `gorm:"type:varchar(20);index"`
	DecidedByID *string
	DecidedAt   *time.Time
}

// Days is the inclusive number of calendar days covered by the request.
func (r LeaveRequest) Days() int {
	return DaysBetween(r.StartDate, r.EndDate)
}

// EachDay calls fn for every calendar day of [StartDate, EndDate].
func (r LeaveRequest) EachDay(fn func(day time.Time) error) error {
	start := apimodels.DateOf(r.StartDate)
	end := apimodels.DateOf(r.EndDate)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := fn(day); err != nil {
			return err
		}
	}
	return nil
}

func (r LeaveRequest) ToModel() leaveapimodels.LeaveView {
	result := leaveapimodels.LeaveView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveType,
		StartDate:  apimodels.FormatDate(r.StartDate),
		EndDate:    apimodels.FormatDate(r.EndDate),
		Days:       r.Days(),
		Reason:     r.Reason,
		Status:     r.Status,
		AppliedOn:  apimodels.FormatDate(r.CreatedAt),
	}
	if r.Employee != nil {
		result.EmployeeName = r.Employee.GetFullName()
	}
	return result
}

// DaysBetween counts calendar days of [start, end], 0 when end is before start.
func DaysBetween(start, end time.Time) int {
	s := apimodels.DateOf(start)
	e := apimodels.DateOf(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
