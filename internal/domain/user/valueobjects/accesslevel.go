package valueobjects

// AccessLevel controls how much of the tenant space a user can see.
// Master users see every tenant; operators only see tenants explicitly
// linked to them.
type AccessLevel string

const (
	AccessLevelMaster   AccessLevel = "master"
	AccessLevelOperator AccessLevel = "operator"
)

// IsValid checks if the access level is valid.
func (a AccessLevel) IsValid() bool {
	switch a {
	case AccessLevelMaster, AccessLevelOperator:
		return true
	default:
		return false
	}
}

// IsMaster returns true if the level grants visibility over all tenants.
func (a AccessLevel) IsMaster() bool {
	return a == AccessLevelMaster
}

// String returns the string representation of the access level.
func (a AccessLevel) String() string {
	return string(a)
}
