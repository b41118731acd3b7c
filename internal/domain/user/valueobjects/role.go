// Package valueobjects provides value objects for the user domain.
package valueobjects

// Role describes the job function of a back-office user.
type Role string

const (
	RoleGeneralAdmin    Role = "general_admin"
	RoleBuildingManager Role = "building_manager"
	RoleMaintenance     Role = "maintenance"
)

// IsValid checks if the role is valid.
func (r Role) IsValid() bool {
	switch r {
	case RoleGeneralAdmin, RoleBuildingManager, RoleMaintenance:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
