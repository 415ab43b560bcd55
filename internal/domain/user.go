package domain

// Role is the access level of a user account.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleEmployee      Role = "Employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdministrator || r == RoleEmployee
}

// User is a system account. Passwords are stored and compared in plain
// text, matching the behavior of the system this replaces; hardening the
// credential store is explicitly out of scope.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
	IsActive bool   `json:"isActive"`
}
