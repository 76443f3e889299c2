package dbmodels

import (
	"time"

	"uni-payments-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRequest struct {
	BaseModel
	FormType models.FormType `gorm:"type:varchar(50);index"`
	// FormData is the form-type specific payload; the workflow never
	// interprets it, per-form validators live with the form UI.
	FormData []byte `gorm:"type:jsonb"`

	SubmittedByID  string `gorm:"type:varchar(36);index"`
	SubmittedBy    *PortalUser `gorm:"foreignKey:SubmittedByID"`
	SubmitterEmail string `gorm:"type:varchar(255)"`
	SubmitterName  string `gorm:"type:varchar(255)"`
	DepartmentID   string `gorm:"type:varchar(36);index"`
	Department     *Department

	Status               models.RequestStatus `gorm:"type:varchar(50);index"`
	CurrentApproverEmail string               `gorm:"type:varchar(255)"`

	HodApprovedBy     string `gorm:"type:varchar(255)"`
	HodApprovedAt     *time.Time
	HodComments       string
	FinanceApprovedBy string `gorm:"type:varchar(255)"`
	FinanceApprovedAt *time.Time
	FinanceComments   string

	RejectedBy      string `gorm:"type:varchar(255)"`
	RejectedAt      *time.Time
	RejectionReason string
	RejectionStage  models.ApprovalStage `gorm:"type:varchar(20)"`

	History []RequestStatusHistory `gorm:"foreignKey:RequestID"`
}

func (r *PaymentRequest) AfterDelete(tx *gorm.DB) (err error) {
	if r.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("request_id = ?", r.ID).Delete(&RequestStatusHistory{})
	return
}
