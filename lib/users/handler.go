package users

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/config"
	"quickpay-backend/db"
	employeestore "quickpay-backend/lib/employee/store"
	"quickpay-backend/lib/notification"
	"quickpay-backend/lib/smtp"
	usersstore "quickpay-backend/lib/users/store"
	connectionhub "quickpay-backend/lib/ws/hub/connection-hub"
	authutils "quickpay-backend/lib/utils/auth-utils"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	usersapimodels "quickpay-backend/models/api/users"
	dbmodels "quickpay-backend/models/db"
)

const (
	generatedPasswordLength = 8
	usernameAttempts        = 10
)

type Provider interface {
	CreateUser(request usersapimodels.CreateUser) (usersapimodels.CreatedUser, error)
	ListUsers(filter usersapimodels.UserFilter) ([]usersapimodels.UserView, error)
	ToggleStatus(userID string) (usersapimodels.UserView, error)
	DeleteUser(userID string) error
	GetProfile(userID string) (usersapimodels.UserView, error)
	UpdateProfile(userID string, request usersapimodels.ProfileUpdate) (usersapimodels.UserView, error)
}

// Mailer sends the welcome letter with generated credentials.
type Mailer interface {
	SendWelcome(to string, data models.WelcomeMailData) error
}

// SessionCloser drops live websocket sessions of blocked or deleted users.
type SessionCloser interface {
	SendClose(userID string)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"smtp", smtp.Instance,
		"notification", notification.Instance,
		"connection_hub", connectionhub.Instance,
	)
	Instance = NewInstance(usersstore.NewInstance(db.DB), employeestore.NewInstance(db.DB), smtp.Instance,
		notification.Instance, connectionhub.Instance, config.Conf.Users.OfficeMailDomain, config.Conf.App.CompanyName)
}

func NewInstance(store usersstore.Provider, employeeStore employeestore.Provider, mailer Mailer,
	notifier notification.Emitter, sessions SessionCloser, officeMailDomain, companyName string) Provider {
	return impl{
		store:            store,
		employeeStore:    employeeStore,
		mailer:           mailer,
		notifier:         notifier,
		sessions:         sessions,
		officeMailDomain: officeMailDomain,
		companyName:      companyName,
	}
}

type impl struct {
	store            usersstore.Provider
	employeeStore    employeestore.Provider
	mailer           Mailer
	notifier         notification.Emitter
	sessions         SessionCloser
	officeMailDomain string
	companyName      string
}

func (i impl) CreateUser(request usersapimodels.CreateUser) (usersapimodels.CreatedUser, error) {
	logger := log.WithField("email", request.Email)
	username, err := i.newUsername(request.FirstName)
	if err != nil {
		logger.WithError(err).Error("username generation failed")
		return usersapimodels.CreatedUser{}, err
	}
	password, err := authutils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return usersapimodels.CreatedUser{}, err
	}
	hash, err := authutils.HashPassword(password)
	if err != nil {
		return usersapimodels.CreatedUser{}, err
	}
	rec := dbmodels.User{
		Username:   username,
		Password:   hash,
		FirstName:  strings.TrimSpace(request.FirstName),
		LastName:   strings.TrimSpace(request.LastName),
		Email:      request.Email,
		OfficeMail: username + "@" + i.officeMailDomain,
		Role:       request.Role,
		IsActive:   true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("user creation failed")
		return usersapimodels.CreatedUser{}, err
	}
	rec.ID = id
	i.sendWelcome(rec, password)
	return usersapimodels.CreatedUser{
		UserView:        rec.ToModel(),
		InitialPassword: password,
	}, nil
}

func (i impl) ListUsers(filter usersapimodels.UserFilter) ([]usersapimodels.UserView, error) {
	list, err := i.store.GetList(filter)
	if err != nil {
		log.WithError(err).Error("user list loading failed")
		return nil, err
	}
	result := make([]usersapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) ToggleStatus(userID string) (usersapimodels.UserView, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec.IsSuperuser {
		return usersapimodels.UserView{}, models.NewForbiddenError("superuser can not be blocked")
	}
	err = i.store.Update(userID, map[string]interface{}{"is_active": !rec.IsActive})
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("user status updating failed")
		return usersapimodels.UserView{}, err
	}
	rec.IsActive = !rec.IsActive
	if !rec.IsActive {
		i.closeSession(userID)
	}
	return rec.ToModel(), nil
}

func (i impl) DeleteUser(userID string) error {
	rec, err := i.getUser(userID)
	if err != nil {
		return err
	}
	if rec.IsSuperuser {
		return models.NewForbiddenError("superuser can not be deleted")
	}
	profile, err := i.employeeStore.GetByUserID(userID)
	if err != nil {
		return err
	}
	if profile != nil {
		return models.NewPreconditionError("user has an employee profile with payroll history, block the account instead")
	}
	err = i.store.Delete(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("user deletion failed")
		return err
	}
	i.closeSession(userID)
	return nil
}

func (i impl) closeSession(userID string) {
	if i.sessions != nil {
		i.sessions.SendClose(userID)
	}
}

func (i impl) GetProfile(userID string) (usersapimodels.UserView, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) UpdateProfile(userID string, request usersapimodels.ProfileUpdate) (usersapimodels.UserView, error) {
	if _, err := i.getUser(userID); err != nil {
		return usersapimodels.UserView{}, err
	}
	updMap := map[string]interface{}{
		"phone_number": strings.TrimSpace(request.PhoneNumber),
		"address":      strings.TrimSpace(request.Address),
	}
	if request.Password != "" {
		hash, err := authutils.HashPassword(request.Password)
		if err != nil {
			return usersapimodels.UserView{}, err
		}
		updMap["password"] = hash
	}
	err := i.store.Update(userID, updMap)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("profile updating failed")
		return usersapimodels.UserView{}, err
	}
	notification.EmitLogged(i.notifier, notification.ToUser(userID), "Profile edited successfully")
	return i.GetProfile(userID)
}

func (i impl) getUser(userID string) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("user loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("user not found")
	}
	return rec, nil
}

func (i impl) newUsername(firstName string) (string, error) {
	for attempt := 0; attempt < usernameAttempts; attempt++ {
		username, err := authutils.GenerateUsername(firstName)
		if err != nil {
			return "", err
		}
		exist, err := i.store.ExistByUsername(username)
		if err != nil {
			return "", err
		}
		if !exist {
			return username, nil
		}
	}
	return "", models.NewPreconditionError("unable to pick a free username, try again")
}

// sendWelcome is best effort, the account exists either way.
func (i impl) sendWelcome(rec dbmodels.User, password string) {
	if i.mailer == nil {
		return
	}
	err := i.mailer.SendWelcome(rec.Email, models.WelcomeMailData{
		FullName:    rec.GetFullName(),
		Username:    rec.Username,
		OfficeMail:  rec.OfficeMail,
		Password:    password,
		CompanyName: i.companyName,
	})
	if err != nil {
		log.WithField("user_id", rec.ID).WithError(err).Warn("welcome email not sent")
	}
}
