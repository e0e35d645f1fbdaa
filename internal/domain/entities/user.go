package entities

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleUser     UserRole = "user"
	UserRoleDisabled UserRole = "disabled"
)

// User is the application profile attached to an authenticated account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Account is the resolved identity of the caller of an operation.
type Account struct {
	ID       string
	Email    string
	Name     string
	Role     UserRole
	IssuedAt time.Time
}

func (a Account) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}
