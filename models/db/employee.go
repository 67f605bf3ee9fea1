package dbmodels

import (
	"time"

	"github.com/shopspring/decimal"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	employeeapimodels "quickpay-backend/models/api/employee"
)

type Employee struct {
	BaseModel
	UserID     string                `gorm:"uniqueIndex"`
	User       *User                 `gorm:"foreignKey:UserID"`
	Department models.Department     `gorm:"type:varchar(50)"`
	HireDate   time.Time             `gorm:"type:date"`
	Salary     decimal.Decimal       `gorm:"type:numeric(12,2)"`
	Status     models.EmployeeStatus `gorm:"type:varchar(20)"`
}

func (r Employee) ToModel() employeeapimodels.EmployeeView {
	result := employeeapimodels.EmployeeView{
		ID:             r.ID,
		UserID:         r.UserID,
		Department:     r.Department,
		DepartmentName: r.Department.ToHuman(),
		HireDate:       apimodels.FormatDate(r.HireDate),
		Salary:         r.Salary,
		Status:         r.Status,
	}
	if r.User != nil {
		result.Username = r.User.Username
		result.FullName = r.User.GetFullName()
		result.Email = r.User.Email
	}
	return result
}

func (r Employee) GetFullName() string {
	if r.User == nil {
		return ""
	}
	return r.User.GetFullName()
}
