package performancereview

import (
	"time"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/db"
	employeestore "quickpay-backend/lib/employee/store"
	"quickpay-backend/lib/notification"
	"quickpay-backend/lib/payroll/calc"
	reviewstore "quickpay-backend/lib/performance-review/store"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	reviewapimodels "quickpay-backend/models/api/review"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Create(reviewerID string, request reviewapimodels.CreateReview) (reviewapimodels.ReviewView, error)
	Update(id string, request reviewapimodels.UpdateReview) (reviewapimodels.ReviewView, error)
	ListByEmployee(employeeID string) ([]reviewapimodels.ReviewView, error)
	ListByUser(userID string) ([]reviewapimodels.ReviewView, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("notification", notification.Instance)
	Instance = NewInstance(reviewstore.NewInstance(db.DB), employeestore.NewInstance(db.DB), notification.Instance)
}

func NewInstance(store reviewstore.Provider, employeeStore employeestore.Provider, notifier notification.Emitter) Provider {
	return impl{
		store:         store,
		employeeStore: employeeStore,
		notifier:      notifier,
		now:           time.Now,
	}
}

type impl struct {
	store         reviewstore.Provider
	employeeStore employeestore.Provider
	notifier      notification.Emitter
	now           func() time.Time
}

func (i impl) Create(reviewerID string, request reviewapimodels.CreateReview) (reviewapimodels.ReviewView, error) {
	employee, err := i.getEmployee(request.EmployeeID)
	if err != nil {
		return reviewapimodels.ReviewView{}, err
	}
	rec := dbmodels.PerformanceReview{
		EmployeeID:          employee.ID,
		ReviewedByID:        reviewerID,
		ReviewDate:          i.reviewDate(request.ReviewDate),
		Rating:              request.Rating,
		Comments:            request.Comments,
		IncrementPercentage: request.IncrementPercentage,
		BonusAmount:         calc.ReviewBonus(employee.Salary, request.Rating),
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		log.WithField("employee_id", employee.ID).WithError(err).Error("review creation failed")
		return reviewapimodels.ReviewView{}, err
	}
	notification.EmitLogged(i.notifier, notification.ToUser(employee.UserID), "A new performance review has been added.")
	return i.get(rec.ID)
}

// Update recomputes the bonus on every save.
func (i impl) Update(id string, request reviewapimodels.UpdateReview) (reviewapimodels.ReviewView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return reviewapimodels.ReviewView{}, err
	}
	employee, err := i.getEmployee(rec.EmployeeID)
	if err != nil {
		return reviewapimodels.ReviewView{}, err
	}
	updMap := map[string]interface{}{
		"rating":               request.Rating,
		"comments":             request.Comments,
		"increment_percentage": request.IncrementPercentage,
		"bonus_amount":         calc.ReviewBonus(employee.Salary, request.Rating),
	}
	if request.ReviewDate != "" {
		updMap["review_date"] = i.reviewDate(request.ReviewDate)
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("review updating failed")
		return reviewapimodels.ReviewView{}, err
	}
	return i.get(id)
}

func (i impl) ListByEmployee(employeeID string) ([]reviewapimodels.ReviewView, error) {
	list, err := i.store.GetListByEmployee(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("review list loading failed")
		return nil, err
	}
	result := make([]reviewapimodels.ReviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) ListByUser(userID string) ([]reviewapimodels.ReviewView, error) {
	employee, err := i.employeeStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, models.NewNotFoundError("employee profile not found")
	}
	return i.ListByEmployee(employee.ID)
}

func (i impl) get(id string) (reviewapimodels.ReviewView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return reviewapimodels.ReviewView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) getRec(id string) (*dbmodels.PerformanceReview, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("review loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("performance review not found")
	}
	return rec, nil
}

func (i impl) getEmployee(employeeID string) (*dbmodels.Employee, error) {
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("employee loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("employee not found")
	}
	return rec, nil
}

func (i impl) reviewDate(value string) time.Time {
	if value == "" {
		return apimodels.DateOf(i.now())
	}
	date, _ := apimodels.ParseDate(value)
	return date
}
