package paymentapimodels

import (
	"encoding/json"
	"strings"
	"time"

	"uni-payments-backend/models"
	apimodels "uni-payments-backend/models/api"
	dbmodels "uni-payments-backend/models/db"
)

type SubmitData struct {
	FormType models.FormType `json:"form_type"`
	FormData json.RawMessage `json:"form_data"` // opaque, validated by per-form validators
}

func (r SubmitData) Validate() error {
	if r.FormType == "" {
		return models.NewValidationError("form type is required")
	}
	if !r.FormType.IsValid() {
		return models.NewValidationError("unknown form type")
	}
	if len(r.FormData) == 0 {
		return models.NewValidationError("form data is required")
	}
	return nil
}

type DecisionData struct {
	Comments string `json:"comments"`
	OtpCode  string `json:"otp_code"`
}

func (r DecisionData) Validate() error {
	if strings.TrimSpace(r.OtpCode) == "" {
		return models.NewOtpError("verification code is required")
	}
	return nil
}

type RequestFilter struct {
	apimodels.Pagination
	FormType models.FormType      `json:"form_type,omitempty"`
	Status   models.RequestStatus `json:"status,omitempty"`
}

func (r RequestFilter) Validate() error {
	if r.FormType != "" && !r.FormType.IsValid() {
		return models.NewValidationError("unknown form type")
	}
	return nil
}

type RegisterFilter struct {
	DateFrom time.Time `json:"date_from"`
	DateTo   time.Time `json:"date_to"`
}

func (r RegisterFilter) Validate() error {
	if !r.DateFrom.IsZero() && !r.DateTo.IsZero() && r.DateTo.Before(r.DateFrom) {
		return models.NewValidationError("date range end precedes its start")
	}
	return nil
}

type ApprovalView struct {
	ApprovedBy string    `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
	Comments   string    `json:"comments,omitempty"`
}

type ApprovalDetailsView struct {
	HodApproval     *ApprovalView `json:"hod_approval,omitempty"`
	FinanceApproval *ApprovalView `json:"finance_approval,omitempty"`
}

type RejectionView struct {
	RejectedBy string               `json:"rejected_by"`
	RejectedAt time.Time            `json:"rejected_at"`
	Reason     string               `json:"reason"`
	Stage      models.ApprovalStage `json:"stage"`
}

type SubmitterView struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

type PaymentRequestView struct {
	ID                   string               `json:"id"`
	FormType             models.FormType      `json:"form_type"`
	FormTypeName         string               `json:"form_type_name"`
	FormData             json.RawMessage      `json:"form_data,omitempty"`
	SubmittedBy          SubmitterView        `json:"submitted_by"`
	Status               models.RequestStatus `json:"status"`
	StatusName           string               `json:"status_name"`
	CurrentApproverEmail string               `json:"current_approver_email,omitempty"`
	ApprovalDetails      *ApprovalDetailsView `json:"approval_details,omitempty"`
	RejectionDetails     *RejectionView       `json:"rejection_details,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func PaymentRequestConvert(rec dbmodels.PaymentRequest) PaymentRequestView {
	view := PaymentRequestView{
		ID:           rec.ID,
		FormType:     rec.FormType,
		FormTypeName: rec.FormType.ToHuman(),
		FormData:     json.RawMessage(rec.FormData),
		SubmittedBy: SubmitterView{
			UserID:   rec.SubmittedByID,
			Email:    rec.SubmitterEmail,
			FullName: rec.SubmitterName,
		},
		Status:               rec.Status,
		StatusName:           rec.Status.ToHuman(),
		CurrentApproverEmail: rec.CurrentApproverEmail,
		CreatedAt:            rec.CreatedAt,
		UpdatedAt:            rec.UpdatedAt,
	}
	if rec.Department != nil {
		view.SubmittedBy.Department = rec.Department.Name
	}
	if rec.HodApprovedAt != nil || rec.FinanceApprovedAt != nil {
		details := ApprovalDetailsView{}
		if rec.HodApprovedAt != nil {
			details.HodApproval = &ApprovalView{
				ApprovedBy: rec.HodApprovedBy,
				ApprovedAt: *rec.HodApprovedAt,
				Comments:   rec.HodComments,
			}
		}
		if rec.FinanceApprovedAt != nil {
			details.FinanceApproval = &ApprovalView{
				ApprovedBy: rec.FinanceApprovedBy,
				ApprovedAt: *rec.FinanceApprovedAt,
				Comments:   rec.FinanceComments,
			}
		}
		view.ApprovalDetails = &details
	}
	if rec.RejectedAt != nil {
		view.RejectionDetails = &RejectionView{
			RejectedBy: rec.RejectedBy,
			RejectedAt: *rec.RejectedAt,
			Reason:     rec.RejectionReason,
			Stage:      rec.RejectionStage,
		}
	}
	return view
}

type HistoryView struct {
	FromStatus models.RequestStatus `json:"from_status,omitempty"`
	ToStatus   models.RequestStatus `json:"to_status"`
	ActorEmail string               `json:"actor_email"`
	ActorRole  string               `json:"actor_role"`
	Comments   string               `json:"comments,omitempty"`
	Date       time.Time            `json:"date"`
}

func HistoryConvert(rec dbmodels.RequestStatusHistory) HistoryView {
	return HistoryView{
		FromStatus: rec.FromStatus,
		ToStatus:   rec.ToStatus,
		ActorEmail: rec.ActorEmail,
		ActorRole:  rec.ActorRole.ToHuman(),
		Comments:   rec.Comments,
		Date:       rec.CreatedAt,
	}
}
