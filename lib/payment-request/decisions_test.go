package paymentrequesthandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"uni-payments-backend/lib/notify"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

const financeEmail = "finance@uni.example"

func pendingHodRec() dbmodels.PaymentRequest {
	rec := dbmodels.PaymentRequest{
		FormType:             models.FormTypePettyCash,
		SubmitterEmail:       "staff@uni.example",
		SubmitterName:        "John Doe",
		Status:               models.RequestStatusPendingHodApproval,
		CurrentApproverEmail: "hod.eie@uni.example",
	}
	rec.ID = "req-1"
	return rec
}

func hodActor() models.Actor {
	return models.Actor{
		UserID: "user-hod",
		Email:  "hod.eie@uni.example",
		Role:   models.UserRoleDepartmentHead,
	}
}

func financeActor() models.Actor {
	return models.Actor{
		UserID: "user-fin",
		Email:  financeEmail,
		Role:   models.UserRoleFinanceOfficer,
	}
}

func TestApproveDecision(t *testing.T) {
	now := time.Now()

	t.Run(`hod stage check`, func(t *testing.T) {
		rec := pendingHodRec()
		dec, err := approveDecision(rec, hodActor(), "looks fine", financeEmail, now)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusPendingFinanceApproval, dec.next)
		require.Equal(t, models.OtpPurposeApproval, dec.purpose)
		require.Equal(t, models.RequestStatusPendingFinanceApproval, dec.updMap["status"])
		require.Equal(t, financeEmail, dec.updMap["current_approver_email"])
		require.Equal(t, "hod.eie@uni.example", dec.updMap["hod_approved_by"])
		require.Equal(t, "looks fine", dec.updMap["hod_comments"])
		require.NotContains(t, dec.updMap, "finance_approved_by")
	})

	t.Run(`finance stage check`, func(t *testing.T) {
		rec := pendingHodRec()
		rec.Status = models.RequestStatusPendingFinanceApproval
		rec.CurrentApproverEmail = financeEmail
		dec, err := approveDecision(rec, financeActor(), "", financeEmail, now)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusApproved, dec.next)
		require.Equal(t, models.RequestStatusApproved, dec.updMap["status"])
		require.Equal(t, "", dec.updMap["current_approver_email"])
		require.Equal(t, financeEmail, dec.updMap["finance_approved_by"])
		require.NotContains(t, dec.updMap, "hod_approved_by")
	})

	t.Run(`terminal status check`, func(t *testing.T) {
		rec := pendingHodRec()
		rec.Status = models.RequestStatusApproved
		_, err := approveDecision(rec, financeActor(), "", financeEmail, now)
		require.NotNil(t, err)
		require.Equal(t, models.KindInvalidState, models.KindOf(err))

		rec.Status = models.RequestStatusRejected
		_, err = approveDecision(rec, hodActor(), "", financeEmail, now)
		require.NotNil(t, err)
		require.Equal(t, models.KindInvalidState, models.KindOf(err))
	})

	t.Run(`wrong role check`, func(t *testing.T) {
		rec := pendingHodRec()
		actor := financeActor()
		actor.Email = rec.CurrentApproverEmail
		_, err := approveDecision(rec, actor, "", financeEmail, now)
		require.NotNil(t, err)
		require.Equal(t, models.KindAuthorization, models.KindOf(err))
	})

	t.Run(`wrong approver email check`, func(t *testing.T) {
		rec := pendingHodRec()
		actor := hodActor()
		actor.Email = "hod.cee@uni.example"
		_, err := approveDecision(rec, actor, "", financeEmail, now)
		require.NotNil(t, err)
		require.Equal(t, models.KindAuthorization, models.KindOf(err))
	})
}

func TestRejectDecision(t *testing.T) {
	now := time.Now()

	t.Run(`hod stage check`, func(t *testing.T) {
		rec := pendingHodRec()
		dec, err := rejectDecision(rec, hodActor(), "missing receipts", now)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusRejected, dec.next)
		require.Equal(t, models.OtpPurposeRejection, dec.purpose)
		require.Equal(t, models.RequestStatusRejected, dec.updMap["status"])
		require.Equal(t, "missing receipts", dec.updMap["rejection_reason"])
		require.Equal(t, models.ApprovalStageHod, dec.updMap["rejection_stage"])
		require.Equal(t, "", dec.updMap["current_approver_email"])
	})

	t.Run(`finance stage check`, func(t *testing.T) {
		rec := pendingHodRec()
		rec.Status = models.RequestStatusPendingFinanceApproval
		rec.CurrentApproverEmail = financeEmail
		dec, err := rejectDecision(rec, financeActor(), "over budget", now)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStageFinance, dec.updMap["rejection_stage"])
	})

	t.Run(`empty reason check`, func(t *testing.T) {
		rec := pendingHodRec()
		_, err := rejectDecision(rec, hodActor(), "   ", now)
		require.NotNil(t, err)
		require.Equal(t, models.KindValidation, models.KindOf(err))
	})

	t.Run(`terminal status check`, func(t *testing.T) {
		rec := pendingHodRec()
		rec.Status = models.RequestStatusRejected
		_, err := rejectDecision(rec, hodActor(), "again", now)
		require.NotNil(t, err)
		require.Equal(t, models.KindInvalidState, models.KindOf(err))
	})
}

func TestTransitionNotice(t *testing.T) {
	rec := pendingHodRec()
	rec.Department = &dbmodels.Department{Name: "Electrical Engineering"}

	t.Run(`to finance stage check`, func(t *testing.T) {
		to, kind, snap := transitionNotice(rec, models.RequestStatusPendingFinanceApproval, "", financeEmail)
		require.Equal(t, financeEmail, to)
		require.Equal(t, notify.KindFinanceApprovalNeeded, kind)
		require.Equal(t, rec.ID, snap.RequestID)
		require.Equal(t, "Electrical Engineering", snap.Department)
	})

	t.Run(`approved check`, func(t *testing.T) {
		to, kind, _ := transitionNotice(rec, models.RequestStatusApproved, "", financeEmail)
		require.Equal(t, rec.SubmitterEmail, to)
		require.Equal(t, notify.KindApproved, kind)
	})

	t.Run(`rejected check`, func(t *testing.T) {
		to, kind, snap := transitionNotice(rec, models.RequestStatusRejected, "missing receipts", financeEmail)
		require.Equal(t, rec.SubmitterEmail, to)
		require.Equal(t, notify.KindRejected, kind)
		require.Equal(t, "missing receipts", snap.Comments)
	})
}

func TestCheckReadAccess(t *testing.T) {
	rec := pendingHodRec()
	rec.SubmittedByID = "user-staff"
	rec.DepartmentID = "dep-eie"

	t.Run(`finance sees all check`, func(t *testing.T) {
		require.Nil(t, checkReadAccess(rec, financeActor()))
	})

	t.Run(`hod scoped to department check`, func(t *testing.T) {
		actor := hodActor()
		actor.DepartmentID = "dep-eie"
		require.Nil(t, checkReadAccess(rec, actor))

		actor.DepartmentID = "dep-cee"
		err := checkReadAccess(rec, actor)
		require.NotNil(t, err)
		require.Equal(t, models.KindAuthorization, models.KindOf(err))
	})

	t.Run(`staff scoped to own check`, func(t *testing.T) {
		actor := models.Actor{UserID: "user-staff", Role: models.UserRoleStaff}
		require.Nil(t, checkReadAccess(rec, actor))

		actor.UserID = "user-other"
		err := checkReadAccess(rec, actor)
		require.NotNil(t, err)
		require.Equal(t, models.KindAuthorization, models.KindOf(err))
	})
}
