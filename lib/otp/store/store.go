package otpstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OtpCode) error
	Find(email string, purpose models.OtpPurpose, requestID string) (*dbmodels.OtpCode, error)
	Delete(id string) error
	DeleteIssued(email string, purpose models.OtpPurpose, requestID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OtpCode) error {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Find(email string, purpose models.OtpPurpose, requestID string) (*dbmodels.OtpCode, error) {
	rec := dbmodels.OtpCode{}
	err := i.db.
		Where("email = ?", email).
		Where("purpose = ?", purpose).
		Where("request_id = ?", requestID).
		Order("date_generated DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.OtpCode{}).
		Error
}

func (i impl) DeleteIssued(email string, purpose models.OtpPurpose, requestID string) error {
	return i.db.
		Where("email = ?", email).
		Where("purpose = ?", purpose).
		Where("request_id = ?", requestID).
		Delete(&dbmodels.OtpCode{}).
		Error
}
