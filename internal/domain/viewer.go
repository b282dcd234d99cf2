package domain

// Role роль пользователя back-office
type Role string

const (
	RoleSuperAdmin       Role = "super_admin"   // платформенный доступ
	RoleCompanyAdmin     Role = "company_admin" // доступ ко всем салонам сети
	RoleFranchiseManager Role = "franchise_manager"
	RoleStaff            Role = "staff"
)

// IsUnrestricted returns true for roles allowed to query across franchises.
// Every other role is pinned to its own franchise when building queries.
func (r Role) IsUnrestricted() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin
}

// IsValidRole reports whether the role is one of the known back-office roles.
func IsValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleFranchiseManager, RoleStaff:
		return true
	}
	return false
}

// Viewer identity of the operator issuing a request
type Viewer struct {
	UserID      int64
	Role        Role
	FranchiseID *int64 // nil для платформенных ролей
}
