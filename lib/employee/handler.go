package employee

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/db"
	employeestore "quickpay-backend/lib/employee/store"
	"quickpay-backend/lib/notification"
	usersstore "quickpay-backend/lib/users/store"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	employeeapimodels "quickpay-backend/models/api/employee"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(request employeeapimodels.CreateEmployee) (employeeapimodels.EmployeeView, error)
	Update(id string, request employeeapimodels.UpdateEmployee) (employeeapimodels.EmployeeView, error)
	GetByID(id string) (employeeapimodels.EmployeeView, error)
	GetByUserID(userID string) (employeeapimodels.EmployeeView, error)
	List() ([]employeeapimodels.EmployeeView, error)
	Candidates() ([]employeeapimodels.CandidateView, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("notification", notification.Instance)
	Instance = NewInstance(employeestore.NewInstance(db.DB), usersstore.NewInstance(db.DB), notification.Instance)
}

func NewInstance(store employeestore.Provider, usersStore usersstore.Provider, notifier notification.Emitter) Provider {
	return impl{
		store:      store,
		usersStore: usersStore,
		notifier:   notifier,
	}
}

type impl struct {
	store      employeestore.Provider
	usersStore usersstore.Provider
	notifier   notification.Emitter
}

func (i impl) Create(request employeeapimodels.CreateEmployee) (employeeapimodels.EmployeeView, error) {
	logger := log.WithField("user_id", request.UserID)
	user, err := i.usersStore.GetByID(request.UserID)
	if err != nil {
		logger.WithError(err).Error("user loading failed")
		return employeeapimodels.EmployeeView{}, err
	}
	if user == nil {
		return employeeapimodels.EmployeeView{}, models.NewNotFoundError("user not found")
	}
	if user.Role != models.EmployeeRole || !user.IsActive {
		return employeeapimodels.EmployeeView{}, models.NewValidationError("only active users with the employee role can get a profile")
	}
	existed, err := i.store.GetByUserID(user.ID)
	if err != nil {
		logger.WithError(err).Error("employee profile check failed")
		return employeeapimodels.EmployeeView{}, err
	}
	if existed != nil {
		return employeeapimodels.EmployeeView{}, models.NewPreconditionError("employee profile already exists")
	}

	hireDate := apimodels.DateOf(user.CreatedAt)
	if request.HireDate != "" {
		hireDate, _ = apimodels.ParseDate(request.HireDate)
	}
	status := request.Status
	if status == "" {
		status = models.EmployeeActive
	}
	rec := dbmodels.Employee{
		UserID:     user.ID,
		Department: request.Department,
		HireDate:   hireDate,
		Salary:     request.Salary.Round(2),
		Status:     status,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("employee profile creation failed")
		return employeeapimodels.EmployeeView{}, err
	}
	notification.EmitLogged(i.notifier, notification.ToUser(user.ID),
		fmt.Sprintf("Your department has been assigned to %s department.", request.Department.ToHuman()))
	return i.GetByID(id)
}

func (i impl) Update(id string, request employeeapimodels.UpdateEmployee) (employeeapimodels.EmployeeView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	updMap := map[string]interface{}{
		"department": request.Department,
		"salary":     request.Salary.Round(2),
	}
	if request.Status != "" {
		updMap["status"] = request.Status
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("employee profile updating failed")
		return employeeapimodels.EmployeeView{}, err
	}
	notification.EmitLogged(i.notifier, notification.ToUser(rec.UserID), "Your details were edited by the HR.")
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) GetByUserID(userID string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("employee profile loading failed")
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, models.NewNotFoundError("employee profile not found")
	}
	return rec.ToModel(), nil
}

func (i impl) List() ([]employeeapimodels.EmployeeView, error) {
	list, err := i.store.GetList()
	if err != nil {
		log.WithError(err).Error("employee list loading failed")
		return nil, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Candidates() ([]employeeapimodels.CandidateView, error) {
	list, err := i.usersStore.GetWithoutEmployeeProfile()
	if err != nil {
		log.WithError(err).Error("candidate list loading failed")
		return nil, err
	}
	result := make([]employeeapimodels.CandidateView, 0, len(list))
	for _, user := range list {
		result = append(result, employeeapimodels.CandidateView{
			UserID:   user.ID,
			Username: user.Username,
			FullName: user.GetFullName(),
		})
	}
	return result, nil
}

func (i impl) getRec(id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("employee profile loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("employee not found")
	}
	return rec, nil
}
