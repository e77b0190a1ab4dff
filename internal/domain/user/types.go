package user

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanViewAll reports whether the role may see records owned by other users.
// Member queries are always narrowed to their own records.
func (r Role) CanViewAll() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanReassignOwner reports whether the role may change a reservation's owner.
func (r Role) CanReassignOwner() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
