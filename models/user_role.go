package models

type UserRole string

const (
	UserRoleStaff          UserRole = "STAFF"
	UserRoleDepartmentHead UserRole = "DEPARTMENT_HEAD"
	UserRoleFinanceOfficer UserRole = "FINANCE_OFFICER"
)

var roleHumanName = map[UserRole]string{
	UserRoleStaff:          "Staff member",
	UserRoleDepartmentHead: "Head of department",
	UserRoleFinanceOfficer: "Finance officer",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsFinanceOfficer() bool {
	return r == UserRoleFinanceOfficer
}

func (r UserRole) IsDepartmentHead() bool {
	return r == UserRoleDepartmentHead
}

// Actor is the acting identity resolved from the auth context.
type Actor struct {
	UserID       string
	Email        string
	FullName     string
	Role         UserRole
	DepartmentID string
}
