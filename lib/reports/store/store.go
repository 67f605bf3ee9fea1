package reportsstore

import (
	"gorm.io/gorm"
	"quickpay-backend/models"
	dbmodels "quickpay-backend/models/db"
)

type UserCounts struct {
	Total  int64
	Active int64
	ByRole map[models.UserRole]int64
}

type Provider interface {
	GetUserCounts() (UserCounts, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// GetUserCounts counts users without the superuser.
func (i impl) GetUserCounts() (UserCounts, error) {
	var rows []struct {
		Role     models.UserRole
		IsActive bool
		Count    int64
	}
	err := i.db.Model(dbmodels.User{}).
		Select("role, is_active, count(*) as count").
		Where("is_superuser = ?", false).
		Group("role, is_active").
		Scan(&rows).
		Error
	if err != nil {
		return UserCounts{}, err
	}
	result := UserCounts{ByRole: map[models.UserRole]int64{}}
	for _, row := range rows {
		result.Total += row.Count
		if row.IsActive {
			result.Active += row.Count
		}
		result.ByRole[row.Role] += row.Count
	}
	return result, nil
}
