package employeeapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	apimodels "quickpay-backend/models/api"
	"quickpay-backend/models"
)

type EmployeeData struct {
	Department models.Department     `json:"department"`
	Salary     decimal.Decimal       `json:"salary"` // monthly basic pay
	Status     models.EmployeeStatus `json:"status"`
}

func (r EmployeeData) Validate() error {
	if err := r.Department.Validate(); err != nil {
		return err
	}
	if r.Salary.IsNegative() {
		return errors.New("salary must not be negative")
	}
	if r.Status == "" {
		return nil
	}
	return r.Status.Validate()
}

type CreateEmployee struct {
	UserID   string `json:"user_id"`
	HireDate string `json:"hire_date"` // YYYY-MM-DD, defaults to the user's join date
	EmployeeData
}

func (r CreateEmployee) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if r.HireDate != "" {
		if _, err := apimodels.ParseDate(r.HireDate); err != nil {
			return err
		}
	}
	return r.EmployeeData.Validate()
}

type UpdateEmployee struct {
	EmployeeData
}

type EmployeeView struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	Username       string                `json:"username"`
	FullName       string                `json:"full_name"`
	Email          string                `json:"email"`
	Department     models.Department     `json:"department"`
	DepartmentName string                `json:"department_name"`
	HireDate       string                `json:"hire_date"`
	Salary         decimal.Decimal       `json:"salary"`
	Status         models.EmployeeStatus `json:"status"`
}

type CandidateView struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}
