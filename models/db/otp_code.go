package dbmodels

import (
	"time"

	"uni-payments-backend/models"
)

// OtpCode is a single-use credential; consumed records are deleted,
// expiry is checked on read rather than via a storage TTL.
type OtpCode struct {
	BaseModel
	Email         string            `gorm:"type:varchar(255);index"`
	Code          string            `gorm:"type:varchar(6)"`
	Purpose       models.OtpPurpose `gorm:"type:varchar(20)"`
	RequestID     string            `gorm:"type:varchar(36);index"`
	DateGenerated time.Time
	DateExpires   time.Time
}
