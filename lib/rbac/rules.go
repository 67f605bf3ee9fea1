package rbac

import (
	"quickpay-backend/models"
)

var (
	AdminRoleSet          = []models.UserRole{models.AdminRole}
	HrRoleSet             = []models.UserRole{models.HRManagerRole}
	PayrollRoleSet        = []models.UserRole{models.PayrollManagerRole}
	EmployeeRoleSet       = []models.UserRole{models.EmployeeRole}
	AdminHrRoleSet        = []models.UserRole{models.AdminRole, models.HRManagerRole}
	AdminHrPayrollRoleSet = []models.UserRole{models.AdminRole, models.HRManagerRole, models.PayrollManagerRole}
	AllRoles              = models.AllUserRoles()
)

func (i *impl) initRules(payslipAllow models.RbacFunc) {
	i.auth()
	i.users()
	i.profile()
	i.employee()
	i.leave()
	i.attendance()
	i.review()
	i.payPolicy()
	i.payroll(payslipAllow)
	i.notification()
	i.feedback()
	i.reports()
}

func (i *impl) auth() {
	i.mustRegister(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/me [get]", nil)
	i.mustRegister(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/permissions [get]", nil)
}

func (i *impl) users() {
	i.mustRegister(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/v1/users [get]", nil)
	i.mustRegister(models.UsersModule, models.CreatePermission, AdminRoleSet, "/api/v1/users [post]", nil)
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users/{id}/toggle_status [put]", nil)
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users/{id} [delete]", nil)
}

func (i *impl) profile() {
	i.mustRegister(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/profile [get]", nil)
	i.mustRegister(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/profile [put]", nil)
}

func (i *impl) employee() {
	i.mustRegister(models.EmployeeModule, models.ViewPermission, AdminHrPayrollRoleSet, "/api/v1/employee [get]", nil)
	i.mustRegister(models.EmployeeModule, models.ViewPermission, AdminHrPayrollRoleSet, "/api/v1/employee/{id} [get]", nil)
	i.mustRegister(models.EmployeeModule, models.ViewPermission, EmployeeRoleSet, "/api/v1/employee/me [get]", nil)
	i.mustRegister(models.EmployeeModule, models.CreatePermission, HrRoleSet, "/api/v1/employee/candidates [get]", nil)
	i.mustRegister(models.EmployeeModule, models.CreatePermission, HrRoleSet, "/api/v1/employee [post]", nil)
	i.mustRegister(models.EmployeeModule, models.EditPermission, HrRoleSet, "/api/v1/employee/{id} [put]", nil)
}

func (i *impl) leave() {
	i.mustRegister(models.LeaveModule, models.CreatePermission, EmployeeRoleSet, "/api/v1/leave [post]", nil)
	i.mustRegister(models.LeaveModule, models.ViewPermission, EmployeeRoleSet, "/api/v1/leave/my [get]", nil)
	i.mustRegister(models.LeaveModule, models.ViewPermission, EmployeeRoleSet, "/api/v1/leave/remaining [get]", nil)
	i.mustRegister(models.LeaveModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/leave [get]", nil)
	i.mustRegister(models.LeaveModule, models.FlowPermission, HrRoleSet, "/api/v1/leave/{id}/decide [post]", nil)
}

func (i *impl) attendance() {
	i.mustRegister(models.AttendanceModule, models.ViewPermission, EmployeeRoleSet, "/api/v1/attendance/my [get]", nil)
	i.mustRegister(models.AttendanceModule, models.ViewPermission, AdminHrPayrollRoleSet, "/api/v1/attendance/{employee_id} [get]", nil)
	i.mustRegister(models.AttendanceModule, models.EditPermission, HrRoleSet, "/api/v1/attendance/{employee_id}/mark [post]", nil)
}

func (i *impl) review() {
	i.mustRegister(models.ReviewModule, models.CreatePermission, HrRoleSet, "/api/v1/review [post]", nil)
	i.mustRegister(models.ReviewModule, models.EditPermission, HrRoleSet, "/api/v1/review/{id} [put]", nil)
	i.mustRegister(models.ReviewModule, models.ViewPermission, EmployeeRoleSet, "/api/v1/review/my [get]", nil)
	i.mustRegister(models.ReviewModule, models.ViewPermission, AdminHrPayrollRoleSet, "/api/v1/review/employee/{employee_id} [get]", nil)
}

func (i *impl) payPolicy() {
	i.mustRegister(models.PayPolicyModule, models.ViewPermission, AdminHrPayrollRoleSet, "/api/v1/pay_policy/latest [get]", nil)
	i.mustRegister(models.PayPolicyModule, models.ViewPermission, AdminHrPayrollRoleSet, "/api/v1/pay_policy/current [get]", nil)
	i.mustRegister(models.PayPolicyModule, models.CreatePermission, AdminRoleSet, "/api/v1/pay_policy [post]", nil)
	i.mustRegister(models.PayPolicyModule, models.EditPermission, AdminRoleSet, "/api/v1/pay_policy/{id} [put]", nil)
	i.mustRegister(models.PayPolicyModule, models.FlowPermission, HrRoleSet, "/api/v1/pay_policy/{id}/approve [post]", nil)
	i.mustRegister(models.PayPolicyModule, models.FlowPermission, HrRoleSet, "/api/v1/pay_policy/{id}/request_change [post]", nil)
}

func (i *impl) payroll(payslipAllow models.RbacFunc) {
	i.mustRegister(models.PayrollModule, models.RunPermission, PayrollRoleSet, "/api/v1/payroll/{employee_id}/preview [get]", nil)
	i.mustRegister(models.PayrollModule, models.RunPermission, PayrollRoleSet, "/api/v1/payroll/{employee_id}/run [post]", nil)
	i.mustRegister(models.PayrollModule, models.ViewPermission, AdminHrPayrollRoleSet, "/api/v1/payroll/{employee_id}/payslips [get]", nil)
	i.mustRegister(models.PayrollModule, models.ViewPermission, AllRoles, "/api/v1/payroll/my_payslips [get]", nil)
	// employees only reach their own payslips
	i.mustRegister(models.PayrollModule, models.ViewPermission, AllRoles, "/api/v1/payroll/payslip/{id} [get]", payslipAllow)
	i.mustRegister(models.PayrollModule, models.ExportPermission, AllRoles, "/api/v1/payroll/payslip/{id}/pdf [get]", payslipAllow)
}

func (i *impl) notification() {
	i.mustRegister(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notification [get]", nil)
	i.mustRegister(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notification/{id}/read [put]", nil)
	i.mustRegister(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/ws [get]", nil)
}

func (i *impl) feedback() {
	i.mustRegister(models.FeedbackModule, models.CreatePermission, AllRoles, "/api/v1/feedback [post]", nil)
	i.mustRegister(models.FeedbackModule, models.ViewPermission, AllRoles, "/api/v1/feedback [get]", nil)
	i.mustRegister(models.FeedbackModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/feedback/{id}/resolve [put]", nil)
	i.mustRegister(models.FeedbackModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/feedback/{id}/review [put]", nil)
}

func (i *impl) reports() {
	for _, path := range []string{
		"/api/v1/reports/payroll_summary",
		"/api/v1/reports/tax_deductions",
	} {
		i.mustRegister(models.ReportsModule, models.ViewPermission, AdminHrPayrollRoleSet, path+" [get]", nil)
		i.mustRegister(models.ReportsModule, models.ExportPermission, AdminHrPayrollRoleSet, path+"/pdf [get]", nil)
		i.mustRegister(models.ReportsModule, models.ExportPermission, AdminHrPayrollRoleSet, path+"/xlsx [get]", nil)
	}
	i.mustRegister(models.ReportsModule, models.ViewPermission, AdminRoleSet, "/api/v1/reports/admin_analytics [get]", nil)
	i.mustRegister(models.ReportsModule, models.ExportPermission, AdminRoleSet, "/api/v1/reports/admin_analytics/pdf [get]", nil)
}
