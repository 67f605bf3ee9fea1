package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule        Module = "USERS"
	ProfileModule      Module = "PROFILE"
	EmployeeModule     Module = "EMPLOYEE"
	LeaveModule        Module = "LEAVE"
	AttendanceModule   Module = "ATTENDANCE"
	ReviewModule       Module = "PERFORMANCE_REVIEW"
	PayPolicyModule    Module = "PAY_POLICY"
	PayrollModule      Module = "PAYROLL"
	NotificationModule Module = "NOTIFICATION"
	FeedbackModule     Module = "FEEDBACK"
	ReportsModule      Module = "REPORTS"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
	RunPermission    Permission = "RUN"
	ExportPermission Permission = "EXPORT"
)
