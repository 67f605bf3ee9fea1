package payrollstore

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	CreateGrossSalary(rec dbmodels.GrossSalary) (string, error)
	CreateTotalDeductions(rec dbmodels.TotalDeductions) (string, error)
	CreatePayroll(rec dbmodels.Payroll) (string, error)
	CreatePayslip(rec dbmodels.Payslip) (string, error)
	CreateTaxDeduction(rec dbmodels.TaxDeduction) (string, error)
	ExistForPeriod(employeeID, period string) (bool, error)
	GetPayslip(id string) (rec *dbmodels.Payslip, err error)
	GetPayslipsByEmployee(employeeID string) (list []dbmodels.Payslip, err error)
	SetPayslipArchiveKey(id, key string) error
	GetPayrollsByPeriod(period string) (list []dbmodels.Payroll, err error)
	GetTotals() (count int64, netPaid decimal.Decimal, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateGrossSalary(rec dbmodels.GrossSalary) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateTotalDeductions(rec dbmodels.TotalDeductions) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreatePayroll(rec dbmodels.Payroll) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreatePayslip(rec dbmodels.Payslip) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateTaxDeduction(rec dbmodels.TaxDeduction) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ExistForPeriod(employeeID, period string) (bool, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("period = ?", period).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) GetPayslip(id string) (rec *dbmodels.Payslip, err error) {
	err = i.db.Model(dbmodels.Payslip{}).
		Preload("Employee.User").
		Preload("Payroll.GrossSalary").
		Preload("Payroll.TotalDeductions").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetPayslipsByEmployee(employeeID string) (list []dbmodels.Payslip, err error) {
	err = i.db.Model(dbmodels.Payslip{}).
		Preload("Employee.User").
		Preload("Payroll").
		Where("employee_id = ?", employeeID).
		Order("pay_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetPayslipArchiveKey(id, key string) error {
	return i.db.
		Model(&dbmodels.Payslip{}).
		Where("id = ?", id).
		Update("archive_key", key).
		Error
}

func (i impl) GetPayrollsByPeriod(period string) (list []dbmodels.Payroll, err error) {
	err = i.db.Model(dbmodels.Payroll{}).
		Preload("Employee.User").
		Preload("GrossSalary").
		Preload("TotalDeductions").
		Where("period = ?", period).
		Order("pay_date, created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetTotals() (count int64, netPaid decimal.Decimal, err error) {
	var totals struct {
		Count   int64
		NetPaid decimal.NullDecimal
	}
	err = i.db.Model(dbmodels.Payroll{}).
		Select("count(*) as count, sum(net_salary) as net_paid").
		Scan(&totals).
		Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	if totals.NetPaid.Valid {
		netPaid = totals.NetPaid.Decimal
	}
	return totals.Count, netPaid, nil
}
