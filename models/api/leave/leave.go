package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"
	apimodels "quickpay-backend/models/api"
	"quickpay-backend/models"
)

type ApplyLeave struct {
	LeaveType models.LeaveType `json:"leave_type"` // sick | vacation | unpaid
	StartDate string           `json:"start_date"` // YYYY-MM-DD
	EndDate   string           `json:"end_date"`   // YYYY-MM-DD
	Reason    string           `json:"reason"`
}

func (r ApplyLeave) Validate() error {
	if err := r.LeaveType.Validate(); err != nil {
		return errors.Wrap(err, "leave_type")
	}
	start, err := apimodels.ParseDate(r.StartDate)
	if err != nil {
		return errors.Wrap(err, "start_date")
	}
	end, err := apimodels.ParseDate(r.EndDate)
	if err != nil {
		return errors.Wrap(err, "end_date")
	}
	if end.Before(start) {
		return errors.New("end_date: end date must not be before start date")
	}
	return nil
}

func (r ApplyLeave) Dates() (start, end time.Time) {
	start, _ = apimodels.ParseDate(r.StartDate)
	end, _ = apimodels.ParseDate(r.EndDate)
	return start, end
}

type LeaveDecision struct {
	Action models.LeaveAction `json:"action"` // approve | reject
}

func (r LeaveDecision) Validate() error {
	return r.Action.Validate()
}

type LeaveFilter struct {
	Status string `query:"status" json:"status"` // pending (default) | approved | rejected | all
}

const LeaveFilterAll = "all"

func (r LeaveFilter) Validate() error {
	switch models.LeaveStatus(r.Status) {
	case "", models.LeavePending, models.LeaveApproved, models.LeaveRejected, LeaveFilterAll:
		return nil
	}
	return errors.Errorf("unknown status filter: %v", r.Status)
}

type LeaveView struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name,omitempty"`
	LeaveType    models.LeaveType   `json:"leave_type"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	Days         int                `json:"days"`
	Reason       string             `json:"reason"`
	Status       models.LeaveStatus `json:"status"`
	AppliedOn    string             `json:"applied_on"`
}

type LeaveBalance struct {
	Year      int `json:"year"`
	Limit     int `json:"limit"`     // yearly paid leave days
	Used      int `json:"used"`      // approved and pending paid days
	Remaining int `json:"remaining"` // never negative
}
