package userapimodels

import (
	"strings"

	"uni-payments-backend/models"
	dbmodels "uni-payments-backend/models/db"
)

type UserData struct {
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	PhoneNumber  string          `json:"phone_number"`
	DepartmentID string          `json:"department_id"`
	Role         models.UserRole `json:"role"`
}

func (r UserData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return models.NewValidationError("email is required")
	}
	if r.Password == "" {
		return models.NewValidationError("password is required")
	}
	switch r.Role {
	case models.UserRoleStaff, models.UserRoleDepartmentHead, models.UserRoleFinanceOfficer:
	default:
		return models.NewValidationError("unknown role")
	}
	if r.DepartmentID == "" && !r.Role.IsFinanceOfficer() {
		return models.NewValidationError("department is required")
	}
	return nil
}

type UserView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Department  string `json:"department,omitempty"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
}

func UserConvert(rec dbmodels.PortalUser) UserView {
	view := UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		FullName:    rec.GetFullName(),
		PhoneNumber: rec.PhoneNumber,
		Role:        rec.Role.ToHuman(),
		IsActive:    rec.IsActive,
	}
	if rec.Department != nil {
		view.Department = rec.Department.Name
	}
	return view
}
