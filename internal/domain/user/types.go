package user

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleFranchise Role = "franchise"
	RoleAdmin     Role = "admin"
	RoleOwner     Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleFranchise, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// CanEnterDashboard reports whether the role alone qualifies for the
// privileged dashboard. Verification and the explicit access flag are
// checked separately by the access policy chain.
func (r Role) CanEnterDashboard() bool {
	switch r {
	case RoleFranchise, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
