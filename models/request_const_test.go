package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus(t *testing.T) {
	t.Run(`approve chain check`, func(t *testing.T) {
		next, ok := RequestStatusPendingHodApproval.OnApprove()
		require.True(t, ok)
		require.Equal(t, RequestStatusPendingFinanceApproval, next)

		next, ok = RequestStatusPendingFinanceApproval.OnApprove()
		require.True(t, ok)
		require.Equal(t, RequestStatusApproved, next)

		_, ok = RequestStatusApproved.OnApprove()
		require.False(t, ok)
		_, ok = RequestStatusRejected.OnApprove()
		require.False(t, ok)
	})

	t.Run(`terminal check`, func(t *testing.T) {
		require.False(t, RequestStatusPendingHodApproval.IsTerminal())
		require.False(t, RequestStatusPendingFinanceApproval.IsTerminal())
		require.True(t, RequestStatusApproved.IsTerminal())
		require.True(t, RequestStatusRejected.IsTerminal())
	})

	t.Run(`reject allowed check`, func(t *testing.T) {
		require.True(t, RequestStatusPendingHodApproval.AllowReject())
		require.True(t, RequestStatusPendingFinanceApproval.AllowReject())
		require.False(t, RequestStatusApproved.AllowReject())
		require.False(t, RequestStatusRejected.AllowReject())
	})

	t.Run(`approver role check`, func(t *testing.T) {
		require.Equal(t, UserRoleDepartmentHead, RequestStatusPendingHodApproval.ApproverRole())
		require.Equal(t, UserRoleFinanceOfficer, RequestStatusPendingFinanceApproval.ApproverRole())
		require.Equal(t, UserRole(""), RequestStatusApproved.ApproverRole())
	})

	t.Run(`stage check`, func(t *testing.T) {
		require.Equal(t, ApprovalStageHod, RequestStatusPendingHodApproval.Stage())
		require.Equal(t, ApprovalStageFinance, RequestStatusPendingFinanceApproval.Stage())
		require.Equal(t, ApprovalStage(""), RequestStatusRejected.Stage())
	})
}

func TestFormType(t *testing.T) {
	t.Run(`known types check`, func(t *testing.T) {
		for _, formType := range []FormType{FormTypePettyCash, FormTypeExamDuty, FormTypeTransport, FormTypePaperMarking, FormTypeOvertime} {
			require.True(t, formType.IsValid())
			require.NotEqual(t, string(formType), formType.ToHuman())
		}
		require.False(t, FormType("travel").IsValid())
	})
}
