package paymentrequesthandler

import (
	"strings"
	"time"

	"uni-payments-backend/lib/notify"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

// decision is a fully validated transition, ready to be applied as a
// conditional update against the status the record held when read.
type decision struct {
	next    models.RequestStatus
	updMap  map[string]interface{}
	purpose models.OtpPurpose
}

func approveDecision(rec dbmodels.PaymentRequest, actor models.Actor, comments, financeEmail string, now time.Time) (decision, error) {
	if err := checkActor(rec, actor); err != nil {
		return decision{}, err
	}
	next, ok := rec.Status.OnApprove()
	if !ok {
		return decision{}, models.NewInvalidStateError("request cannot be approved in its current status")
	}
	updMap := map[string]interface{}{
		"status": next,
	}
	switch rec.Status.Stage() {
	case models.ApprovalStageHod:
		updMap["current_approver_email"] = financeEmail
		updMap["hod_approved_by"] = actor.Email
		updMap["hod_approved_at"] = now
		updMap["hod_comments"] = comments
	case models.ApprovalStageFinance:
		updMap["current_approver_email"] = ""
		updMap["finance_approved_by"] = actor.Email
		updMap["finance_approved_at"] = now
		updMap["finance_comments"] = comments
	}
	return decision{
		next:    next,
		updMap:  updMap,
		purpose: models.OtpPurposeApproval,
	}, nil
}

func rejectDecision(rec dbmodels.PaymentRequest, actor models.Actor, reason string, now time.Time) (decision, error) {
	if err := checkActor(rec, actor); err != nil {
		return decision{}, err
	}
	if !rec.Status.AllowReject() {
		return decision{}, models.NewInvalidStateError("request cannot be rejected in its current status")
	}
	if strings.TrimSpace(reason) == "" {
		return decision{}, models.NewValidationError("rejection reason is required")
	}
	updMap := map[string]interface{}{
		"status":                 models.RequestStatusRejected,
		"current_approver_email": "",
		"rejected_by":            actor.Email,
		"rejected_at":            now,
		"rejection_reason":       reason,
		"rejection_stage":        rec.Status.Stage(),
	}
	return decision{
		next:    models.RequestStatusRejected,
		updMap:  updMap,
		purpose: models.OtpPurposeRejection,
	}, nil
}

func checkActor(rec dbmodels.PaymentRequest, actor models.Actor) error {
	if rec.Status.IsTerminal() {
		return models.NewInvalidStateError("request has already been decided")
	}
	if actor.Role != rec.Status.ApproverRole() {
		return models.NewAuthorizationError("this stage is assigned to a different role")
	}
	if actor.Email != rec.CurrentApproverEmail {
		return models.NewAuthorizationError("this stage is assigned to a different approver")
	}
	return nil
}

// transitionNotice picks the outbound notice for a finished transition.
func transitionNotice(rec dbmodels.PaymentRequest, next models.RequestStatus, reason, financeEmail string) (to string, kind notify.TemplateKind, snap notify.Snapshot) {
	snap = notify.Snapshot{
		RequestID:     rec.ID,
		FormType:      rec.FormType,
		SubmitterName: rec.SubmitterName,
		Status:        next,
		Comments:      reason,
	}
	if rec.Department != nil {
		snap.Department = rec.Department.Name
	}
	switch next {
	case models.RequestStatusPendingFinanceApproval:
		return financeEmail, notify.KindFinanceApprovalNeeded, snap
	case models.RequestStatusApproved:
		return rec.SubmitterEmail, notify.KindApproved, snap
	case models.RequestStatusRejected:
		return rec.SubmitterEmail, notify.KindRejected, snap
	}
	return "", "", snap
}
