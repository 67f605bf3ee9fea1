package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"quickpay-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/leave/{id}/decide [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		require.True(t, r1.MatchString("/api/v1/leave/123-321/decide"))
		require.False(t, r1.MatchString("/api/v1/leave/decide"))

		path, method, err = parseSwaggerPattern("/api/v1/payroll/{employee_id}/run/{otherID} [get]")
		require.Nil(t, err)
		require.Equal(t, GET, method)
		r2 := pathToRegex(path)

		require.True(t, r2.MatchString("/api/v1/payroll/123-321/run/qwe-ewr123-wr-12"))
		require.False(t, r2.MatchString("/api/v1/payroll/we-ewr123-wr-12/run"))
	})
	t.Run(`pattern without method`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/v1/leave")
		require.Error(t, err)
	})
	t.Run(`normalizePath`, func(t *testing.T) {
		require.Equal(t, "/", normalizePath(""))
		require.Equal(t, "/api/v1/leave", normalizePath("api//v1/leave/"))
	})
}

func TestRouteRules(t *testing.T) {
	ownPayslip := func(userID string, role models.UserRole, uri string) bool {
		return role != models.EmployeeRole || uri == "/api/v1/payroll/payslip/own"
	}
	i := newInstance(ownPayslip)
	allowed := func(method, path string, role models.UserRole) bool {
		fn, found := i.GetRuleFunc(method, path)
		require.True(t, found, "%s %s has no rule", method, path)
		return fn("user-1", role, path)
	}

	t.Run(`only payroll manager runs payroll`, func(t *testing.T) {
		require.True(t, allowed("POST", "/api/v1/payroll/e-1/run", models.PayrollManagerRole))
		require.False(t, allowed("POST", "/api/v1/payroll/e-1/run", models.AdminRole))
		require.False(t, allowed("POST", "/api/v1/payroll/e-1/run", models.EmployeeRole))
	})
	t.Run(`leave decisions belong to hr`, func(t *testing.T) {
		require.True(t, allowed("POST", "/api/v1/leave/l-1/decide", models.HRManagerRole))
		require.False(t, allowed("POST", "/api/v1/leave/l-1/decide", models.EmployeeRole))
		require.True(t, allowed("POST", "/api/v1/leave", models.EmployeeRole))
		require.False(t, allowed("POST", "/api/v1/leave", models.HRManagerRole))
	})
	t.Run(`pay policy workflow`, func(t *testing.T) {
		require.True(t, allowed("POST", "/api/v1/pay_policy", models.AdminRole))
		require.False(t, allowed("POST", "/api/v1/pay_policy", models.HRManagerRole))
		require.True(t, allowed("POST", "/api/v1/pay_policy/p-1/approve", models.HRManagerRole))
		require.False(t, allowed("POST", "/api/v1/pay_policy/p-1/approve", models.AdminRole))
	})
	t.Run(`exact path wins over pattern`, func(t *testing.T) {
		require.True(t, allowed("GET", "/api/v1/employee/candidates", models.HRManagerRole))
		require.False(t, allowed("GET", "/api/v1/employee/candidates", models.PayrollManagerRole))
		require.True(t, allowed("GET", "/api/v1/employee/e-1", models.PayrollManagerRole))
	})
	t.Run(`payslip ownership`, func(t *testing.T) {
		require.True(t, allowed("GET", "/api/v1/payroll/payslip/own", models.EmployeeRole))
		require.False(t, allowed("GET", "/api/v1/payroll/payslip/foreign", models.EmployeeRole))
		require.True(t, allowed("GET", "/api/v1/payroll/payslip/foreign", models.HRManagerRole))
	})
	t.Run(`unknown route has no rule`, func(t *testing.T) {
		_, found := i.GetRuleFunc("GET", "/api/v1/unknown")
		require.False(t, found)
		_, found = i.GetRuleFunc("DELETE", "/api/v1/leave/l-1/decide")
		require.False(t, found)
	})
	t.Run(`permissions for frontend`, func(t *testing.T) {
		perms := i.GetPermissions(models.PayrollManagerRole)
		require.Contains(t, perms[models.PayrollModule], models.RunPermission)
		require.NotContains(t, perms, models.UsersModule)
	})
}
