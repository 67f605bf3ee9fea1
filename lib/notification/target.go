package notification

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"quickpay-backend/models"
)

// Target addresses a notification: one user, one role or a list of roles.
type Target struct {
	UserID string
	Role   models.UserRole
	Roles  []models.UserRole
}

func ToUser(userID string) Target {
	return Target{UserID: userID}
}

func ToRole(role models.UserRole) Target {
	return Target{Role: role}
}

func ToRoles(roles ...models.UserRole) Target {
	return Target{Roles: roles}
}

func (t Target) Validate() error {
	set := 0
	if t.UserID != "" {
		set++
	}
	if t.Role != "" {
		set++
	}
	if len(t.Roles) > 0 {
		set++
	}
	if set != 1 {
		return errors.New("notification target must be exactly one of user, role or roles")
	}
	if t.Role != "" {
		if err := t.Role.Validate(); err != nil {
			return err
		}
	}
	for _, role := range t.Roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t Target) String() string {
	switch {
	case t.UserID != "":
		return "user:" + t.UserID
	case t.Role != "":
		return "role:" + string(t.Role)
	}
	roles := make([]string, 0, len(t.Roles))
	for _, role := range t.Roles {
		roles = append(roles, string(role))
	}
	return fmt.Sprintf("roles:%s", strings.Join(roles, ","))
}
