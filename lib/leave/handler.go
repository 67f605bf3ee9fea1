package leave

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"quickpay-backend/config"
	"quickpay-backend/db"
	"quickpay-backend/lib/attendance"
	employeestore "quickpay-backend/lib/employee/store"
	leavestore "quickpay-backend/lib/leave/store"
	"quickpay-backend/lib/notification"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	leaveapimodels "quickpay-backend/models/api/leave"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Apply(userID string, request leaveapimodels.ApplyLeave) (leaveapimodels.LeaveView, error)
	Decide(deciderID, id string, request leaveapimodels.LeaveDecision) (leaveapimodels.LeaveView, error)
	ListByUser(userID string) ([]leaveapimodels.LeaveView, error)
	ListForManagement(filter leaveapimodels.LeaveFilter) ([]leaveapimodels.LeaveView, error)
	Remaining(userID string) (leaveapimodels.LeaveBalance, error)
}

// TxFunc runs fn against stores bound to one transaction.
type TxFunc func(fn func(store leavestore.Provider, attendanceHandler attendance.Provider) error) error

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("notification", notification.Instance)
	Instance = NewInstance(leavestore.NewInstance(db.DB), employeestore.NewInstance(db.DB),
		notification.Instance, config.Conf.Leave.YearlyPaidLimit, dbTx)
}

func NewInstance(store leavestore.Provider, employeeStore employeestore.Provider, notifier notification.Emitter,
	yearlyLimit int, inTx TxFunc) Provider {
	return impl{
		store:         store,
		employeeStore: employeeStore,
		notifier:      notifier,
		yearlyLimit:   yearlyLimit,
		inTx:          inTx,
		now:           time.Now,
	}
}

func dbTx(fn func(store leavestore.Provider, attendanceHandler attendance.Provider) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(leavestore.NewInstance(tx), attendance.NewHandlerWithTx(tx))
	})
}

type impl struct {
	store         leavestore.Provider
	employeeStore employeestore.Provider
	notifier      notification.Emitter
	yearlyLimit   int
	inTx          TxFunc
	now           func() time.Time
}

func (i impl) Apply(userID string, request leaveapimodels.ApplyLeave) (leaveapimodels.LeaveView, error) {
	employee, err := i.getEmployeeByUser(userID)
	if err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	logger := log.WithField("employee_id", employee.ID)
	start, end := request.Dates()
	today := apimodels.DateOf(i.now())
	if start.Before(today) {
		return leaveapimodels.LeaveView{}, models.NewValidationError("start_date: leave can not start in the past")
	}
	if end.Before(today) {
		return leaveapimodels.LeaveView{}, models.NewValidationError("end_date: leave can not end in the past")
	}
	rec := dbmodels.LeaveRequest{
		EmployeeID: employee.ID,
		LeaveType:  request.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     request.Reason,
		Status:     models.LeavePending,
	}
	if rec.LeaveType.IsPaid() {
		used, err := i.paidDaysUsed(i.store, employee.ID, start.Year(), models.LeavePending, models.LeaveApproved)
		if err != nil {
			logger.WithError(err).Error("leave usage loading failed")
			return leaveapimodels.LeaveView{}, err
		}
		if used+rec.Days() > i.yearlyLimit {
			return leaveapimodels.LeaveView{}, models.NewValidationError(
				fmt.Sprintf("end_date: only %d paid leave days remain for %d", max(i.yearlyLimit-used, 0), start.Year()))
		}
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("leave request creation failed")
		return leaveapimodels.LeaveView{}, err
	}
	logger.WithField("rec_id", rec.ID).Info("leave request created")
	rec.CreatedAt = i.now()
	return rec.ToModel(), nil
}

func (i impl) Decide(deciderID, id string, request leaveapimodels.LeaveDecision) (leaveapimodels.LeaveView, error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("leave request loading failed")
		return leaveapimodels.LeaveView{}, err
	}
	if rec == nil {
		return leaveapimodels.LeaveView{}, models.NewNotFoundError("leave request not found")
	}
	if rec.Status != models.LeavePending {
		return leaveapimodels.LeaveView{}, models.NewPreconditionError(fmt.Sprintf("leave request already %s", rec.Status))
	}

	status := models.LeaveRejected
	if request.Action == models.LeaveActionApprove {
		status = models.LeaveApproved
	}
	decidedAt := i.now()
	err = i.inTx(func(store leavestore.Provider, attendanceHandler attendance.Provider) error {
		if status == models.LeaveApproved && rec.LeaveType.IsPaid() {
			used, err := i.paidDaysUsed(store, rec.EmployeeID, rec.StartDate.Year(), models.LeaveApproved)
			if err != nil {
				return err
			}
			if used+rec.Days() > i.yearlyLimit {
				return models.NewPreconditionError("yearly paid leave limit exceeded")
			}
		}
		err := store.Update(rec.ID, map[string]interface{}{
			"status":        status,
			"decided_by_id": deciderID,
			"decided_at":    decidedAt,
		})
		if err != nil {
			return err
		}
		if status != models.LeaveApproved {
			return nil
		}
		_, err = attendanceHandler.UpsertLeaveDays(*rec)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("leave request decision failed")
		return leaveapimodels.LeaveView{}, err
	}
	rec.Status = status
	rec.DecidedByID = &deciderID
	rec.DecidedAt = &decidedAt
	logger.WithField("status", status).Info("leave request decided")

	if rec.Employee != nil {
		notification.EmitLogged(i.notifier, notification.ToUser(rec.Employee.UserID),
			fmt.Sprintf("Your leave request from %s to %s has been %s.",
				apimodels.FormatDate(rec.StartDate), apimodels.FormatDate(rec.EndDate), status))
	}
	return rec.ToModel(), nil
}

func (i impl) ListByUser(userID string) ([]leaveapimodels.LeaveView, error) {
	employee, err := i.getEmployeeByUser(userID)
	if err != nil {
		return nil, err
	}
	list, err := i.store.GetListByEmployee(employee.ID)
	if err != nil {
		log.WithField("employee_id", employee.ID).WithError(err).Error("leave list loading failed")
		return nil, err
	}
	return toViews(list), nil
}

func (i impl) ListForManagement(filter leaveapimodels.LeaveFilter) ([]leaveapimodels.LeaveView, error) {
	var statuses []models.LeaveStatus
	switch filter.Status {
	case "":
		statuses = []models.LeaveStatus{models.LeavePending}
	case leaveapimodels.LeaveFilterAll:
	default:
		statuses = []models.LeaveStatus{models.LeaveStatus(filter.Status)}
	}
	list, err := i.store.GetList(statuses)
	if err != nil {
		log.WithError(err).Error("leave list loading failed")
		return nil, err
	}
	return toViews(list), nil
}

func (i impl) Remaining(userID string) (leaveapimodels.LeaveBalance, error) {
	employee, err := i.getEmployeeByUser(userID)
	if err != nil {
		return leaveapimodels.LeaveBalance{}, err
	}
	year := i.now().Year()
	used, err := i.paidDaysUsed(i.store, employee.ID, year, models.LeavePending, models.LeaveApproved)
	if err != nil {
		log.WithField("employee_id", employee.ID).WithError(err).Error("leave usage loading failed")
		return leaveapimodels.LeaveBalance{}, err
	}
	return leaveapimodels.LeaveBalance{
		Year:      year,
		Limit:     i.yearlyLimit,
		Used:      used,
		Remaining: max(i.yearlyLimit-used, 0),
	}, nil
}

func (i impl) paidDaysUsed(store leavestore.Provider, employeeID string, year int, statuses ...models.LeaveStatus) (int, error) {
	list, err := store.GetPaidInYear(employeeID, year, statuses)
	if err != nil {
		return 0, err
	}
	used := 0
	for _, rec := range list {
		used += rec.Days()
	}
	return used, nil
}

func (i impl) getEmployeeByUser(userID string) (*dbmodels.Employee, error) {
	rec, err := i.employeeStore.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("employee profile loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("employee profile not found")
	}
	return rec, nil
}

func toViews(list []dbmodels.LeaveRequest) []leaveapimodels.LeaveView {
	result := make([]leaveapimodels.LeaveView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result
}
