package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"quickpay-backend/db"
	employeestore "quickpay-backend/lib/employee/store"
	pdfexport "quickpay-backend/lib/export/pdf"
	filestorage "quickpay-backend/lib/file-storage"
	leavestore "quickpay-backend/lib/leave/store"
	"quickpay-backend/lib/notification"
	paypolicy "quickpay-backend/lib/pay-policy"
	"quickpay-backend/lib/payroll/calc"
	payrollstore "quickpay-backend/lib/payroll/store"
	reviewstore "quickpay-backend/lib/performance-review/store"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/lib/utils/lock"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	payrollapimodels "quickpay-backend/models/api/payroll"
	dbmodels "quickpay-backend/models/db"
)

const runLockWait = 5 * time.Second

type Provider interface {
	Preview(ctx context.Context, employeeID string) (payrollapimodels.PreviewView, error)
	Run(ctx context.Context, processedByID, employeeID string, request payrollapimodels.RunPayroll) (payrollapimodels.PayrollView, error)
	ListPayslips(employeeID string) ([]payrollapimodels.PayslipView, error)
	MyPayslips(userID string) ([]payrollapimodels.PayslipView, error)
	GetPayslip(id string) (payrollapimodels.PayslipView, error)
	PayslipPDF(ctx context.Context, id string) (fileName string, body []byte, err error)
	GetRbacPayslipAllow() models.RbacFunc
}

// TxFunc runs fn against a payroll store bound to one transaction.
type TxFunc func(fn func(store payrollstore.Provider) error) error

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"notification", notification.Instance,
		"pay_policy", paypolicy.Instance,
		"pdf_export", pdfexport.Instance,
		"file_storage", filestorage.Instance,
	)
	Instance = NewInstance(Deps{
		Store:         payrollstore.NewInstance(db.DB),
		EmployeeStore: employeestore.NewInstance(db.DB),
		LeaveStore:    leavestore.NewInstance(db.DB),
		ReviewStore:   reviewstore.NewInstance(db.DB),
		Policies:      paypolicy.Instance,
		Notifier:      notification.Instance,
		Pdf:           pdfexport.Instance,
		Files:         filestorage.Instance,
		InTx:          dbTx,
	})
}

type Deps struct {
	Store         payrollstore.Provider
	EmployeeStore employeestore.Provider
	LeaveStore    leavestore.Provider
	ReviewStore   reviewstore.Provider
	Policies      paypolicy.CurrentResolver
	Notifier      notification.Emitter
	Pdf           pdfexport.Provider
	Files         filestorage.Provider
	InTx          TxFunc
}

func NewInstance(deps Deps) Provider {
	return impl{
		Deps: deps,
		now:  time.Now,
	}
}

func dbTx(fn func(store payrollstore.Provider) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(payrollstore.NewInstance(tx))
	})
}

type impl struct {
	Deps
	now func() time.Time
}

// inputs collects everything a payroll computation reads for one employee and pay date.
type inputs struct {
	employee   *dbmodels.Employee
	policy     *dbmodels.CommonPay
	unpaidDays int
	increment  *dbmodels.PerformanceReview
}

func (i impl) Preview(ctx context.Context, employeeID string) (payrollapimodels.PreviewView, error) {
	today := apimodels.DateOf(i.now())
	in, err := i.loadInputs(ctx, employeeID, today)
	if err != nil {
		return payrollapimodels.PreviewView{}, err
	}
	period := apimodels.Period(today)
	processed, err := i.Store.ExistForPeriod(employeeID, period)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("payroll existence check failed")
		return payrollapimodels.PreviewView{}, err
	}
	result := payrollapimodels.PreviewView{
		EmployeeID:       employeeID,
		Period:           period,
		Salary:           in.employee.Salary,
		UnpaidDays:       in.unpaidDays,
		PerDaySalary:     calc.PerDaySalary(in.employee.Salary),
		PerformanceBonus: calc.Percent(in.employee.Salary, in.incrementPct()),
		AlreadyProcessed: processed,
	}
	if in.policy != nil {
		policy := in.policy.ToModel()
		result.Policy = &policy
	}
	return result, nil
}

func (i impl) Run(ctx context.Context, processedByID, employeeID string, request payrollapimodels.RunPayroll) (payrollapimodels.PayrollView, error) {
	logger := log.WithField("employee_id", employeeID)
	if err := request.Validate(); err != nil {
		return payrollapimodels.PayrollView{}, models.NewValidationError(err.Error())
	}
	payDate := apimodels.DateOf(i.now())
	period := apimodels.Period(payDate)
	logger = logger.WithField("period", period)

	var result payrollapimodels.PayrollView
	var employeeUserID string
	success, err := lock.WithDelay(ctx, "payroll:"+employeeID+":"+period, runLockWait, func() error {
		var err error
		result, employeeUserID, err = i.run(ctx, processedByID, employeeID, payDate, request)
		return err
	})
	if err != nil {
		return payrollapimodels.PayrollView{}, err
	}
	if !success {
		return payrollapimodels.PayrollView{}, models.NewPreconditionError("payroll for this employee is already being processed")
	}
	logger.WithField("rec_id", result.ID).Info("payroll processed")

	notification.EmitLogged(i.Notifier, notification.ToUser(employeeUserID),
		fmt.Sprintf("Your payslip for %s has been processed successfully. Net Pay: Rs. %s",
			payDate.Format("January 2006"), result.NetSalary.StringFixed(2)))
	notification.EmitLogged(i.Notifier, notification.ToRole(models.HRManagerRole),
		fmt.Sprintf("Payslip for employee ID %s has been generated.", employeeID))
	return result, nil
}

func (i impl) run(ctx context.Context, processedByID, employeeID string, payDate time.Time, request payrollapimodels.RunPayroll) (payrollapimodels.PayrollView, string, error) {
	period := apimodels.Period(payDate)
	in, err := i.loadInputs(ctx, employeeID, payDate)
	if err != nil {
		return payrollapimodels.PayrollView{}, "", err
	}
	if in.policy == nil {
		return payrollapimodels.PayrollView{}, "", models.NewPreconditionError("no approved pay policy is in effect")
	}
	processed, err := i.Store.ExistForPeriod(employeeID, period)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("payroll existence check failed")
		return payrollapimodels.PayrollView{}, "", err
	}
	if processed {
		return payrollapimodels.PayrollView{}, "", models.NewPreconditionError("payroll for this period has already been processed")
	}

	computed := calc.Compute(calc.Input{
		Salary: in.employee.Salary,
		Policy: calc.Policy{
			DA:  in.policy.DA,
			HRA: in.policy.HRA,
			PF:  in.policy.PF,
		},
		UnpaidDays:      in.unpaidDays,
		IncrementPct:    in.incrementPct(),
		OtherAllowances: request.OtherAllowances,
		TaxType:         request.TaxType,
		TaxAmount:       request.TaxAmount,
	})

	gross := dbmodels.GrossSalary{
		EmployeeID:       employeeID,
		BasicPay:         computed.BasicPay,
		DAAmount:         computed.DAAmount,
		HRAAmount:        computed.HRAAmount,
		OtherAllowances:  computed.OtherAllowances,
		PerformanceBonus: computed.PerformanceBonus,
		Allowances:       computed.Allowances,
		GrossTotal:       computed.GrossTotal,
	}
	deductions := dbmodels.TotalDeductions{
		EmployeeID:        employeeID,
		GrossSalaryAmount: computed.GrossTotal,
		PF:                computed.PF,
		ESI:               computed.ESI,
		PT:                computed.PT,
		IncomeTax:         computed.IncomeTax,
		LeaveDeduction:    computed.LeaveDeduction,
		TotalDeduction:    computed.TotalDeduction,
	}
	rec := dbmodels.Payroll{
		EmployeeID:    employeeID,
		Period:        period,
		PayDate:       payDate,
		UnpaidDays:    in.unpaidDays,
		PerDaySalary:  computed.PerDaySalary,
		Bonuses:       computed.PerformanceBonus,
		NetSalary:     computed.NetSalary,
		ProcessedByID: processedByID,
	}
	var payslipID string
	err = i.InTx(func(store payrollstore.Provider) error {
		var err error
		rec.GrossSalaryID, err = store.CreateGrossSalary(gross)
		if err != nil {
			return errors.Wrap(err, "gross salary creation failed")
		}
		rec.TotalDeductionsID, err = store.CreateTotalDeductions(deductions)
		if err != nil {
			return errors.Wrap(err, "deductions creation failed")
		}
		rec.ID, err = store.CreatePayroll(rec)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.NewPreconditionError("payroll for this period has already been processed")
			}
			return errors.Wrap(err, "payroll creation failed")
		}
		if request.TaxAmount.IsPositive() {
			_, err = store.CreateTaxDeduction(dbmodels.TaxDeduction{
				EmployeeID:    employeeID,
				PayrollID:     rec.ID,
				TaxType:       request.TaxType,
				Amount:        calc.Money(request.TaxAmount),
				DeductionDate: payDate,
			})
			if err != nil {
				return errors.Wrap(err, "tax deduction creation failed")
			}
		}
		payslipID, err = store.CreatePayslip(dbmodels.Payslip{
			PayrollID:       rec.ID,
			EmployeeID:      employeeID,
			PayDate:         payDate,
			TotalEarnings:   computed.GrossTotal,
			TotalDeductions: computed.TotalDeduction,
			NetPay:          computed.NetSalary,
		})
		if err != nil {
			return errors.Wrap(err, "payslip creation failed")
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, models.ErrPrecondition) {
			log.WithField("employee_id", employeeID).WithError(err).Error("payroll processing failed")
		}
		return payrollapimodels.PayrollView{}, "", err
	}
	rec.GrossSalary = &gross
	rec.TotalDeductions = &deductions
	result := rec.ToModel()
	result.PayslipID = payslipID
	return result, in.employee.UserID, nil
}

func (i impl) ListPayslips(employeeID string) ([]payrollapimodels.PayslipView, error) {
	employee, err := i.EmployeeStore.GetByID(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("employee loading failed")
		return nil, err
	}
	if employee == nil {
		return nil, models.NewNotFoundError("employee not found")
	}
	return i.payslips(employeeID)
}

func (i impl) MyPayslips(userID string) ([]payrollapimodels.PayslipView, error) {
	employee, err := i.EmployeeStore.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("employee loading failed")
		return nil, err
	}
	if employee == nil {
		return []payrollapimodels.PayslipView{}, nil
	}
	return i.payslips(employee.ID)
}

func (i impl) GetPayslip(id string) (payrollapimodels.PayslipView, error) {
	rec, err := i.getPayslip(id)
	if err != nil {
		return payrollapimodels.PayslipView{}, err
	}
	return rec.ToModel(), nil
}

// PayslipPDF renders the payslip, serving the archived copy when one exists.
func (i impl) PayslipPDF(ctx context.Context, id string) (fileName string, body []byte, err error) {
	rec, err := i.getPayslip(id)
	if err != nil {
		return "", nil, err
	}
	logger := log.WithField("rec_id", id)
	view := rec.ToModel()
	fileName = fmt.Sprintf("payslip_%s_%s.pdf", view.Period, rec.EmployeeID)
	if rec.ArchiveKey != "" && i.Files.IsConfigured() {
		body, err = i.Files.GetFile(ctx, rec.ArchiveKey)
		if err == nil {
			return fileName, body, nil
		}
		logger.WithError(err).Warn("archived payslip loading failed, rendering again")
	}
	body, err = i.Pdf.Payslip(view)
	if err != nil {
		logger.WithError(err).Error("payslip rendering failed")
		return "", nil, err
	}
	if i.Files.IsConfigured() {
		key, err := i.Files.UploadPayslip(ctx, rec.EmployeeID, rec.ID, body)
		if err != nil {
			logger.WithError(err).Warn("payslip archiving failed")
		} else if err = i.Store.SetPayslipArchiveKey(rec.ID, key); err != nil {
			logger.WithError(err).Warn("payslip archive key saving failed")
		}
	}
	return fileName, body, nil
}

// GetRbacPayslipAllow lets employees reach only their own payslips, other roles are checked by role.
func (i impl) GetRbacPayslipAllow() models.RbacFunc {
	return func(userID string, role models.UserRole, path string) bool {
		if role != models.EmployeeRole {
			return true
		}
		payslipID := payslipIDFromPath(path)
		if payslipID == "" {
			return false
		}
		logger := log.WithField("user_id", userID).WithField("rec_id", payslipID)
		employee, err := i.EmployeeStore.GetByUserID(userID)
		if err != nil {
			logger.WithError(err).Error("employee loading failed")
			return false
		}
		if employee == nil {
			return false
		}
		rec, err := i.Store.GetPayslip(payslipID)
		if err != nil {
			logger.WithError(err).Error("payslip loading failed")
			return false
		}
		// unknown payslips fall through to a 404 from the handler
		return rec == nil || rec.EmployeeID == employee.ID
	}
}

func payslipIDFromPath(path string) string {
	const marker = "/payslip/"
	idx := strings.Index(path, marker)
	if idx < 0 {
		return ""
	}
	rest := path[idx+len(marker):]
	if end := strings.IndexAny(rest, "/?"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

func (i impl) payslips(employeeID string) ([]payrollapimodels.PayslipView, error) {
	list, err := i.Store.GetPayslipsByEmployee(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("payslips loading failed")
		return nil, err
	}
	result := make([]payrollapimodels.PayslipView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) getPayslip(id string) (*dbmodels.Payslip, error) {
	rec, err := i.Store.GetPayslip(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("payslip loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("payslip not found")
	}
	return rec, nil
}

func (i impl) loadInputs(ctx context.Context, employeeID string, payDate time.Time) (inputs, error) {
	logger := log.WithField("employee_id", employeeID)
	employee, err := i.EmployeeStore.GetByID(employeeID)
	if err != nil {
		logger.WithError(err).Error("employee loading failed")
		return inputs{}, err
	}
	if employee == nil {
		return inputs{}, models.NewNotFoundError("employee not found")
	}
	policy, err := i.Policies.CurrentAsOf(ctx, payDate)
	if err != nil {
		return inputs{}, err
	}
	monthStart := time.Date(payDate.Year(), payDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	unpaid, err := i.LeaveStore.GetApprovedUnpaid(employeeID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		logger.WithError(err).Error("unpaid leaves loading failed")
		return inputs{}, err
	}
	unpaidDays := 0
	for _, rec := range unpaid {
		unpaidDays += rec.Days()
	}
	review, err := i.ReviewStore.GetLatest(employeeID)
	if err != nil {
		logger.WithError(err).Error("latest review loading failed")
		return inputs{}, err
	}
	return inputs{
		employee:   employee,
		policy:     policy,
		unpaidDays: unpaidDays,
		increment:  review,
	}, nil
}

func (r inputs) incrementPct() decimal.Decimal {
	if r.increment == nil {
		return decimal.Zero
	}
	return r.increment.IncrementPercentage
}
