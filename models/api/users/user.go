package usersapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
	"quickpay-backend/models"
)

type CreateUser struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"` // personal email, receives the welcome letter
	Role      models.UserRole `json:"role"`  // employee | hr_manager | payroll_manager
}

func (r CreateUser) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return errors.New("last name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has invalid format")
	}
	if err := r.Role.Validate(); err != nil {
		return err
	}
	if !r.Role.IsAssignable() {
		return errors.Errorf("role %v can not be assigned", r.Role)
	}
	return nil
}

type UserView struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	OfficeMail  string          `json:"office_mail"`
	PhoneNumber string          `json:"phone_number"`
	Address     string          `json:"address"`
	Role        models.UserRole `json:"role"`
	RoleName    string          `json:"role_name"`
	IsActive    bool            `json:"is_active"`
	IsSuperuser bool            `json:"is_superuser"`
	DateJoined  string          `json:"date_joined"`
	LastLogin   string          `json:"last_login,omitempty"`
}

// CreatedUser is returned once, right after creation.
type CreatedUser struct {
	UserView
	InitialPassword string `json:"initial_password"`
}

type UserFilter struct {
	Role   models.UserRole         `query:"role" json:"role"`
	Status models.UserStatusFilter `query:"status" json:"status"` // active | blocked
}

func (r UserFilter) Validate() error {
	if r.Role != "" {
		if err := r.Role.Validate(); err != nil {
			return err
		}
	}
	switch r.Status {
	case "", models.UserStatusActive, models.UserStatusBlocked:
		return nil
	}
	return errors.Errorf("unknown status filter: %v", r.Status)
}

type ProfileUpdate struct {
	PhoneNumber     string `json:"phone_number"`
	Address         string `json:"address"`
	Password        string `json:"password"` // optional, keeps the current password when empty
	ConfirmPassword string `json:"confirm_password"`
}

func (r ProfileUpdate) Validate() error {
	if len(r.PhoneNumber) > 15 {
		return errors.New("phone number is too long")
	}
	if r.Password != r.ConfirmPassword {
		return errors.New("passwords do not match")
	}
	return nil
}
