package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "quickpay-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	entities := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"Employee", &dbmodels.Employee{}},
		{"LeaveRequest", &dbmodels.LeaveRequest{}},
		{"Attendance", &dbmodels.Attendance{}},
		{"PerformanceReview", &dbmodels.PerformanceReview{}},
		{"CommonPay", &dbmodels.CommonPay{}},
		{"GrossSalary", &dbmodels.GrossSalary{}},
		{"TotalDeductions", &dbmodels.TotalDeductions{}},
		{"TaxDeduction", &dbmodels.TaxDeduction{}},
		{"Payroll", &dbmodels.Payroll{}},
		{"Payslip", &dbmodels.Payslip{}},
		{"NotificationEvent", &dbmodels.NotificationEvent{}},
		{"Notification", &dbmodels.Notification{}},
		{"Feedback", &dbmodels.Feedback{}},
	}
	for _, entity := range entities {
		if err := DB.AutoMigrate(entity.model); err != nil {
			return errors.Wrapf(err, "%s structure migration failed", entity.name)
		}
	}
	log.Info("migrations done")
	return nil
}
