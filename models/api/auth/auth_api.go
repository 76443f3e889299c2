package authapimodels

import (
	"strings"

	"uni-payments-backend/models"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return models.NewValidationError("email is required")
	}
	if r.Password == "" {
		return models.NewValidationError("password is required")
	}
	return nil
}

type RefreshData struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshData) Validate() error {
	if r.RefreshToken == "" {
		return models.NewValidationError("refresh token is required")
	}
	return nil
}

type TokenPairView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type OtpRequestData struct {
	Purpose   models.OtpPurpose `json:"purpose"`
	RequestID string            `json:"request_id,omitempty"`
}

func (r OtpRequestData) Validate() error {
	if !r.Purpose.IsValid() {
		return models.NewValidationError("unknown verification purpose")
	}
	if r.Purpose != models.OtpPurposeLogin && r.RequestID == "" {
		return models.NewValidationError("request id is required for approval codes")
	}
	return nil
}

type OtpVerifyData struct {
	Code string `json:"code"`
}

func (r OtpVerifyData) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return models.NewOtpError("verification code is required")
	}
	return nil
}
