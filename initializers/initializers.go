package initializers

import (
	"context"

	"quickpay-backend/config"
	"quickpay-backend/fiberlog"
	"quickpay-backend/lib/attendance"
	"quickpay-backend/lib/auth"
	"quickpay-backend/lib/employee"
	pdfexport "quickpay-backend/lib/export/pdf"
	xlsexport "quickpay-backend/lib/export/xls"
	"quickpay-backend/lib/feedback"
	filestorage "quickpay-backend/lib/file-storage"
	"quickpay-backend/lib/leave"
	"quickpay-backend/lib/notification"
	dispatchworker "quickpay-backend/lib/notification/dispatch-worker"
	paypolicy "quickpay-backend/lib/pay-policy"
	"quickpay-backend/lib/payroll"
	performancereview "quickpay-backend/lib/performance-review"
	"quickpay-backend/lib/rbac"
	"quickpay-backend/lib/reports"
	"quickpay-backend/lib/users"
	connectionhub "quickpay-backend/lib/ws/hub/connection-hub"
	s3client "quickpay-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	InitS3()
	InitSmtp()
	InitRedis(ctx)
	connectionhub.Init()
	notification.NewHandler(connectionhub.Instance)
	filestorage.NewHandler(s3client.Client)
	pdfexport.NewHandler(config.Conf.App.CompanyName, *config.Conf.Pdf.Compress)
	xlsexport.NewHandler()
	auth.NewHandler()
	users.NewHandler()
	employee.NewHandler()
	attendance.NewHandler()
	leave.NewHandler()
	performancereview.NewHandler()
	paypolicy.NewHandler()
	payroll.NewHandler()
	feedback.NewHandler()
	reports.NewHandler()
	// route policy needs the payroll handler for payslip ownership checks
	rbac.NewHandler(payroll.Instance.GetRbacPayslipAllow())
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	dispatchworker.StartWorker(ctx)
}
