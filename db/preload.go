package db

import (
	log "github.com/sirupsen/logrus"
	"quickpay-backend/config"
	usersstore "quickpay-backend/lib/users/store"
	authutils "quickpay-backend/lib/utils/auth-utils"
	"quickpay-backend/models"
	dbmodels "quickpay-backend/models/db"
)

func InitPreload() {
	addSuperUser()
}

func addSuperUser() {
	if config.Conf.Admin.Password == "" {
		log.Warn("superuser not created, ADMIN_PASSWORD is not set")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByUsername(config.Conf.Admin.Username)
	if err != nil {
		log.WithError(err).Error("superuser creation failed")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("superuser creation failed")
		return
	}
	rec := dbmodels.User{
		Username:    config.Conf.Admin.Username,
		Password:    hash,
		FirstName:   "System",
		LastName:    "Administrator",
		Email:       config.Conf.Admin.Email,
		Role:        models.AdminRole,
		IsActive:    true,
		IsSuperuser: true,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("superuser creation failed")
		return
	}
	log.WithField("username", rec.Username).Info("superuser created")
}
