package entity

// AccountStatus represents the moderation state of a user account.
// Suspension blocks write operations while authentication still succeeds.
type AccountStatus string

const (
	// AccountPending is the default state after registration, before an admin verifies the account.
	AccountPending AccountStatus = "pending"
	// AccountVerified marks an account cleared by an admin.
	AccountVerified AccountStatus = "verified"
	// AccountSuspended blocks the account from placing orders or mutating data.
	AccountSuspended AccountStatus = "suspended"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountPending, AccountVerified, AccountSuspended:
		return true
	default:
		return false
	}
}
