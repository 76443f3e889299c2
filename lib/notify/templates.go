package notify

import (
	"fmt"

	"uni-payments-backend/models"
)

type TemplateKind string

const (
	KindSubmitted             TemplateKind = "submitted"
	KindHodApprovalNeeded     TemplateKind = "hod_approval_needed"
	KindFinanceApprovalNeeded TemplateKind = "finance_approval_needed"
	KindApproved              TemplateKind = "approved"
	KindRejected              TemplateKind = "rejected"
)

// Snapshot carries the request fields a notice template needs; the
// workflow never hands the db record itself to the mail path.
type Snapshot struct {
	RequestID     string
	FormType      models.FormType
	SubmitterName string
	Department    string
	Status        models.RequestStatus
	Comments      string
}

func buildMessage(kind TemplateKind, snap Snapshot) (subject, body string, ok bool) {
	switch kind {
	case KindSubmitted:
		return fmt.Sprintf("%s request submitted", snap.FormType.ToHuman()),
			fmt.Sprintf("Your %s request %s was submitted and sent to the head of %s for approval.",
				snap.FormType.ToHuman(), snap.RequestID, snap.Department), true
	case KindHodApprovalNeeded:
		return fmt.Sprintf("%s request awaiting your approval", snap.FormType.ToHuman()),
			fmt.Sprintf("%s submitted a %s request (%s). It awaits your decision in the portal.",
				snap.SubmitterName, snap.FormType.ToHuman(), snap.RequestID), true
	case KindFinanceApprovalNeeded:
		return fmt.Sprintf("%s request awaiting finance approval", snap.FormType.ToHuman()),
			fmt.Sprintf("The %s request %s from %s (%s) was approved by the head of department and awaits finance review.",
				snap.FormType.ToHuman(), snap.RequestID, snap.SubmitterName, snap.Department), true
	case KindApproved:
		return fmt.Sprintf("%s request approved", snap.FormType.ToHuman()),
			fmt.Sprintf("Your %s request %s has been approved. The payment voucher is available in the portal.",
				snap.FormType.ToHuman(), snap.RequestID), true
	case KindRejected:
		return fmt.Sprintf("%s request rejected", snap.FormType.ToHuman()),
			fmt.Sprintf("Your %s request %s was rejected. Reason: %s",
				snap.FormType.ToHuman(), snap.RequestID, snap.Comments), true
	}
	return "", "", false
}
