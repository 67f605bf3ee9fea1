package dbmodels

import (
	"time"

	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	attendanceapimodels "quickpay-backend/models/api/attendance"
)

type Attendance struct {
	BaseModel
	EmployeeID string                  `gorm:"uniqueIndex:idx_attendance_employee_date"`
	Date       time.Time               `gorm:"type:date;uniqueIndex:idx_attendance_employee_date"`
	Status     models.AttendanceStatus `gorm:"type:varchar(20)"`
	LeaveID    *string                 `gorm:"index"`
}

func (r Attendance) ToModel() attendanceapimodels.AttendanceView {
	result := attendanceapimodels.AttendanceView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       apimodels.FormatDate(r.Date),
		Status:     r.Status,
	}
	if r.LeaveID != nil {
		result.LeaveID = *r.LeaveID
	}
	return result
}
