package auth

import (
	"time"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/db"
	usersstore "quickpay-backend/lib/users/store"
	authutils "quickpay-backend/lib/utils/auth-utils"
	"quickpay-backend/models"
	authapimodels "quickpay-backend/models/api/auth"
	usersapimodels "quickpay-backend/models/api/users"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Login(request authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	RefreshToken(refreshToken string) (authapimodels.JWTResponse, error)
	Me(userID string) (usersapimodels.UserView, error)
	ResetPassword(request authapimodels.PasswordResetRequest) error
	IsActive(userID string) (bool, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(usersstore.NewInstance(db.DB))
}

func NewInstance(store usersstore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Login(request authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("username", request.Username)
	rec, err := i.store.FindByUsername(request.Username)
	if err != nil {
		logger.WithError(err).Error("user loading failed")
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil || !authutils.CheckPassword(rec.Password, request.Password) {
		return authapimodels.JWTResponse{}, models.NewUnauthorizedError("invalid username or password")
	}
	if !rec.IsActive {
		return authapimodels.JWTResponse{}, models.NewForbiddenError("account has been blocked")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Warn("last login updating failed")
	}
	return i.issueTokens(rec)
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, models.NewUnauthorizedError("invalid refresh token")
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil {
		return authapimodels.JWTResponse{}, models.NewUnauthorizedError("invalid refresh token")
	}
	if !rec.IsActive {
		return authapimodels.JWTResponse{}, models.NewForbiddenError("account has been blocked")
	}
	return i.issueTokens(rec)
}

func (i impl) Me(userID string) (usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, models.NewNotFoundError("user not found")
	}
	return rec.ToModel(), nil
}

func (i impl) ResetPassword(request authapimodels.PasswordResetRequest) error {
	rec, err := i.store.FindByUsernameAndPhone(request.Username, request.PhoneNumber)
	if err != nil {
		log.WithField("username", request.Username).WithError(err).Error("user loading failed")
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("no user found with this username and phone number")
	}
	hash, err := authutils.HashPassword(request.NewPassword)
	if err != nil {
		return err
	}
	return i.store.Update(rec.ID, map[string]interface{}{"password": hash})
}

// IsActive reports false for blocked and deleted accounts.
func (i impl) IsActive(userID string) (bool, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.IsActive, nil
}

func (i impl) issueTokens(rec *dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(rec.ID, rec.GetFullName(), rec.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID, rec.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
