package core

// Role is the authorization level of a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is a known identity and its role.
type User struct {
	ID   string
	Role Role
}
