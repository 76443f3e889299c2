package dbmodels

import (
	"fmt"
	"time"

	"uni-payments-backend/models"
)

type PortalUser struct {
	BaseModel
	Password     string `gorm:"type:varchar(128)"`
	FirstName    string `gorm:"type:varchar(150)"`
	LastName     string `gorm:"type:varchar(150)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	IsActive     bool
	PhoneNumber  string `gorm:"type:varchar(15)"`
	DepartmentID string `gorm:"type:varchar(36);index"`
	Department   *Department
	Role         models.UserRole `gorm:"type:varchar(50)"`
	// OtpVerified is dropped back to false after every privileged action
	OtpVerified bool
	LastLogin   time.Time
}

func (r PortalUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
