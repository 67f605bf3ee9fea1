package models

import "github.com/pkg/errors"

type Department string

const (
	DepartmentHR         Department = "hr"
	DepartmentFinance    Department = "finance"
	DepartmentIT         Department = "it"
	DepartmentMarketing  Department = "marketing"
	DepartmentSales      Department = "sales"
	DepartmentOperations Department = "operations"
)

var departmentHumanName = map[Department]string{
	DepartmentHR:         "Human Resources",
	DepartmentFinance:    "Finance",
	DepartmentIT:         "Information Technology",
	DepartmentMarketing:  "Marketing",
	DepartmentSales:      "Sales",
	DepartmentOperations: "Operations",
}

func (d Department) ToHuman() string {
	if human, exist := departmentHumanName[d]; exist {
		return human
	}
	return string(d)
}

func (d Department) Validate() error {
	if _, ok := departmentHumanName[d]; !ok {
		return errors.Errorf("unknown department: %v", d)
	}
	return nil
}

type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeOnLeave    EmployeeStatus = "on_leave"
	EmployeeTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) Validate() error {
	switch s {
	case EmployeeActive, EmployeeOnLeave, EmployeeTerminated:
		return nil
	}
	return errors.Errorf("unknown employee status: %v", s)
}

type LeaveType string

const (
	LeaveSick     LeaveType = "sick"
	LeaveVacation LeaveType = "vacation"
	LeaveUnpaid   LeaveType = "unpaid"
)

func (t LeaveType) Validate() error {
	switch t {
	case LeaveSick, LeaveVacation, LeaveUnpaid:
		return nil
	}
	return errors.Errorf("unknown leave type: %v", t)
}

// IsPaid reports whether the leave counts against the yearly paid-leave limit.
func (t LeaveType) IsPaid() bool {
	return t == LeaveSick || t == LeaveVacation
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) IsDecided() bool {
	return s == LeaveApproved || s == LeaveRejected
}

type LeaveAction string

const (
	LeaveActionApprove LeaveAction = "approve"
	LeaveActionReject  LeaveAction = "reject"
)

func (a LeaveAction) Validate() error {
	if a != LeaveActionApprove && a != LeaveActionReject {
		return errors.Errorf("unknown action: %v", a)
	}
	return nil
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

func (s AttendanceStatus) Validate() error {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return nil
	}
	return errors.Errorf("unknown attendance status: %v", s)
}

type PayPolicyStatus string

const (
	PayPolicyPending       PayPolicyStatus = "Pending"
	PayPolicyApproved      PayPolicyStatus = "Approved"
	PayPolicyEditRequested PayPolicyStatus = "Edit Requested"
)

func (s PayPolicyStatus) AllowApprove() bool {
	return s == PayPolicyPending || s == PayPolicyEditRequested
}

func (s PayPolicyStatus) AllowRequestChange() bool {
	return s == PayPolicyPending || s == PayPolicyApproved
}

type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "Pending"
	FeedbackResolved FeedbackStatus = "Resolved"
	FeedbackReviewed FeedbackStatus = "Reviewed"
)

var feedbackStatusOrder = map[FeedbackStatus]int{
	FeedbackPending:  0,
	FeedbackResolved: 1,
	FeedbackReviewed: 2,
}

// IsAllowChange reports whether moving to next keeps the status moving forward.
func (s FeedbackStatus) IsAllowChange(next FeedbackStatus) bool {
	cur, ok := feedbackStatusOrder[s]
	if !ok {
		return false
	}
	nxt, ok := feedbackStatusOrder[next]
	if !ok {
		return false
	}
	return nxt > cur
}

type TaxType string

const (
	TaxIncomeTax TaxType = "income_tax"
	TaxOther     TaxType = "other"
)

func (t TaxType) Validate() error {
	if t != TaxIncomeTax && t != TaxOther {
		return errors.Errorf("unknown tax type: %v", t)
	}
	return nil
}
