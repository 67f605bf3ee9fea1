package dbmodels

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	usersapimodels "quickpay-backend/models/api/users"
)

type User struct {
	BaseModel
	Username    string          `gorm:"type:varchar(150);uniqueIndex"`
	Password    string          `gorm:"type:varchar(128)"`
	FirstName   string          `gorm:"type:varchar(150)"`
	LastName    string          `gorm:"type:varchar(150)"`
	Email       string          `gorm:"type:varchar(255)"`
	OfficeMail  string          `gorm:"type:varchar(255)"`
	PhoneNumber string          `gorm:"type:varchar(15)"`
	Address     string          `gorm:"type:varchar(255)"`
	Role        models.UserRole `gorm:"type:varchar(50);index"`
	IsActive    bool
	IsSuperuser bool
	LastLogin   *time.Time
}

// BeforeSave keeps the superuser an admin whose office mail is the personal one.
func (r *User) BeforeSave(tx *gorm.DB) error {
	if r.IsSuperuser {
		r.Role = models.AdminRole
		r.OfficeMail = r.Email
	}
	return nil
}

func (r User) ToModel() usersapimodels.UserView {
	result := usersapimodels.UserView{
		ID:          r.ID,
		Username:    r.Username,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		OfficeMail:  r.OfficeMail,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Role:        r.Role,
		RoleName:    r.Role.ToHuman(),
		IsActive:    r.IsActive,
		IsSuperuser: r.IsSuperuser,
		DateJoined:  apimodels.FormatDate(r.CreatedAt),
	}
	if r.LastLogin != nil {
		result.LastLogin = r.LastLogin.Format(time.RFC3339)
	}
	return result
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
