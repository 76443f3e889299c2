package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"uni-payments-backend/db"
	otpstore "uni-payments-backend/lib/otp/store"
	"uni-payments-backend/lib/smtp"
	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

// codeTTL is checked on read, the table carries no storage-level TTL.
const codeTTL = 5 * time.Minute
const codeLen = 6

type Provider interface {
	Send(email string, purpose models.OtpPurpose, requestID string) error
	// Consume validates and deletes the code inside the caller's
	// transaction, so a rolled back action leaves the code usable.
	Consume(tx *gorm.DB, email string, purpose models.OtpPurpose, requestID, code string) error
}

var Instance Provider

func NewHandler(emailFrom string) {
	Instance = impl{
		store:     otpstore.NewInstance(db.DB),
		emailFrom: emailFrom,
	}
}

type impl struct {
	store     otpstore.Provider
	emailFrom string
}

func (i impl) Send(email string, purpose models.OtpPurpose, requestID string) error {
	logger := log.
		WithField("email", email).
		WithField("purpose", string(purpose))
	// a fresh code voids any unconsumed one for the same action
	err := i.store.DeleteIssued(email, purpose, requestID)
	if err != nil {
		return models.NewPersistenceError(err, "verification code reset error")
	}
	rec := dbmodels.OtpCode{
		Email:         email,
		Code:          generateCode(),
		Purpose:       purpose,
		RequestID:     requestID,
		DateGenerated: time.Now(),
		DateExpires:   time.Now().Add(codeTTL),
	}
	err = i.store.Create(rec)
	if err != nil {
		return models.NewPersistenceError(err, "verification code store error")
	}
	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", rec.Code, int(codeTTL.Minutes()))
	err = smtp.Instance.SendEMail(i.emailFrom, email, message, "Verification code")
	if err != nil {
		return err
	}
	logger.Info("verification code sent")
	return nil
}

func (i impl) Consume(tx *gorm.DB, email string, purpose models.OtpPurpose, requestID, code string) error {
	store := i.store
	if tx != nil {
		store = otpstore.NewInstance(tx)
	}
	rec, err := store.Find(email, purpose, requestID)
	if err != nil {
		return models.NewPersistenceError(err, "verification code lookup error")
	}
	err = checkCode(rec, code, time.Now())
	if err != nil {
		return err
	}
	err = store.Delete(rec.ID)
	if err != nil {
		return models.NewPersistenceError(err, "verification code consume error")
	}
	return nil
}

func checkCode(rec *dbmodels.OtpCode, code string, now time.Time) error {
	if rec == nil {
		return models.NewOtpError("no verification code was issued for this action")
	}
	if rec.Code != code {
		return models.NewOtpError("verification code does not match")
	}
	if rec.DateExpires.Before(now) {
		return models.NewOtpError("verification code has expired")
	}
	return nil
}

func generateCode() string {
	max := big.NewInt(1)
	for idx := 0; idx < codeLen; idx++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// rand.Reader failing means the platform entropy source is broken
		panic(err)
	}
	return fmt.Sprintf("%0*d", codeLen, n)
}
