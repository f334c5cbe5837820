// Package entity contains the core business objects of the project.
package entity

// Role represents the single role an account holds in the marketplace.
type Role string

const (
	// RoleBuyer indicates a consumer who shops and places orders.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates a farmer who lists products and fulfils orders.
	RoleSeller Role = "seller"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}
