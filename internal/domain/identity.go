package domain

// Role is the actor role assigned by the external identity provider
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one the system knows about
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Identity describes the authenticated actor of a request.
// Authentication happens upstream; this service only trusts what it is handed.
type Identity struct {
	UserID int64
	Role   Role
}
