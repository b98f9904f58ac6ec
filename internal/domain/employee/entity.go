package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	FullName    string
	PhoneNumber string
	Role        Role
	BaseSalary  decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Role string

const (
	RoleMechanic    Role = "mechanic"
	RoleServiceDesk Role = "service_desk"
	RoleManager     Role = "manager"
	RoleApprentice  Role = "apprentice"
)

func ValidRoles() []string {
	return []string{
		string(RoleMechanic),
		string(RoleServiceDesk),
		string(RoleManager),
		string(RoleApprentice),
	}
}
