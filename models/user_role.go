package models

import "github.com/pkg/errors"

type UserRole string

const (
	AdminRole          UserRole = "admin"
	HRManagerRole      UserRole = "hr_manager"
	PayrollManagerRole UserRole = "payroll_manager"
	EmployeeRole       UserRole = "employee"
)

var roleHumanName = map[UserRole]string{
	AdminRole:          "Admin",
	HRManagerRole:      "HR Manager",
	PayrollManagerRole: "Payroll Manager",
	EmployeeRole:       "Employee",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) Validate() error {
	if _, ok := roleHumanName[r]; !ok {
		return errors.Errorf("unknown role: %v", r)
	}
	return nil
}

// IsAssignable reports whether the role can be given to a user created through the API.
// Admins only come from the bootstrap superuser.
func (r UserRole) IsAssignable() bool {
	return r == HRManagerRole || r == PayrollManagerRole || r == EmployeeRole
}

func AllUserRoles() []UserRole {
	return []UserRole{AdminRole, HRManagerRole, PayrollManagerRole, EmployeeRole}
}

const SystemUser = "System"

type UserStatusFilter string

const (
	UserStatusActive  UserStatusFilter = "active"
	UserStatusBlocked UserStatusFilter = "blocked"
)
