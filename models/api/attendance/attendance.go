package attendanceapimodels

import (
	"github.com/pkg/errors"
	apimodels "quickpay-backend/models/api"
	"quickpay-backend/models"
)

type MarkAttendance struct {
	Date   string                  `json:"date"`   // YYYY-MM-DD
	Status models.AttendanceStatus `json:"status"` // present | absent
}

func (r MarkAttendance) Validate() error {
	if _, err := apimodels.ParseDate(r.Date); err != nil {
		return errors.Wrap(err, "date")
	}
	if r.Status != models.AttendancePresent && r.Status != models.AttendanceAbsent {
		return errors.New("status: only present or absent can be marked manually")
	}
	return nil
}

type AttendanceView struct {
	ID         string                  `json:"id"`
	EmployeeID string                  `json:"employee_id"`
	Date       string                  `json:"date"`
	Status     models.AttendanceStatus `json:"status"`
	LeaveID    string                  `json:"leave_id,omitempty"`
}
