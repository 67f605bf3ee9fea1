package leaveapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"quickpay-backend/models"
)

func TestApplyLeaveValidate(t *testing.T) {
	valid := ApplyLeave{LeaveType: models.LeaveVacation, StartDate: "2024-05-06", EndDate: "2024-05-08"}

	t.Run("valid range", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})
	t.Run("single day", func(t *testing.T) {
		req := valid
		req.EndDate = req.StartDate
		require.NoError(t, req.Validate())
	})
	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.EndDate = "2024-05-05"
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "end_date")
	})
	t.Run("unknown type", func(t *testing.T) {
		req := valid
		req.LeaveType = "maternity"
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "leave_type")
	})
	t.Run("bad start date", func(t *testing.T) {
		req := valid
		req.StartDate = "06/05/2024"
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "start_date")
	})
	t.Run("missing end date", func(t *testing.T) {
		req := valid
		req.EndDate = ""
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "end_date")
	})
}

func TestLeaveDecisionValidate(t *testing.T) {
	require.NoError(t, LeaveDecision{Action: models.LeaveActionApprove}.Validate())
	require.NoError(t, LeaveDecision{Action: models.LeaveActionReject}.Validate())
	require.Error(t, LeaveDecision{Action: "cancel"}.Validate())
	require.Error(t, LeaveDecision{}.Validate())
}

func TestLeaveFilterValidate(t *testing.T) {
	for _, status := range []string{"", "pending", "approved", "rejected", LeaveFilterAll} {
		require.NoError(t, LeaveFilter{Status: status}.Validate(), status)
	}
	require.Error(t, LeaveFilter{Status: "cancelled"}.Validate())
}
