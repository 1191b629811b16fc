package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Valid reports whether r is one of the known roles. Anything else is
// stored as-is and denied by the policy.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	default:
		return false
	}
}

type User struct {
	ID    uint64
	Name  string
	Email string
	Role  Role
}

func (u User) Principal() Principal {
	return Principal{ID: u.ID, Role: u.Role}
}

// Principal is the authenticated actor of a request.
type Principal struct {
	ID   uint64
	Role Role
}
