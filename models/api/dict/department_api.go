package dictapimodels

import (
	"strings"

	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

type DepartmentData struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	HeadName  string `json:"head_name"`
	HeadEmail string `json:"head_email"`
}

func (r DepartmentData) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return models.NewValidationError("department code is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("department name is required")
	}
	if strings.TrimSpace(r.HeadEmail) == "" {
		return models.NewValidationError("head of department email is required")
	}
	return nil
}

type DepartmentView struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	HeadName  string `json:"head_name"`
	HeadEmail string `json:"head_email"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		ID:        rec.ID,
		Code:      rec.Code,
		Name:      rec.Name,
		HeadName:  rec.HeadName,
		HeadEmail: rec.HeadEmail,
	}
}
