package dbmodels

import (
	"uni-payments-backend/models"

	"github.com/lib/pq"
)

// RequestStatusHistory is an append-only audit row, one per transition.
type RequestStatusHistory struct {
	BaseModel
	RequestID  string               `gorm:"type:varchar(36);not null;index"`
	FromStatus models.RequestStatus `gorm:"type:varchar(50)"`
	ToStatus   models.RequestStatus `gorm:"type:varchar(50);not null"`
	ActorEmail string               `gorm:"type:varchar(255)"`
	ActorRole  models.UserRole      `gorm:"type:varchar(50)"`
	Comments   string
	// recipients the transition notice went out to, best-effort record
	NotifiedEmails pq.StringArray `gorm:"type:text[]"`
}
