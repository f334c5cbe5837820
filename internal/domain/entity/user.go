// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the marketplace. Every account is either a buyer or a seller.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, unique across accounts.
	Name         string    // Display name, also used as the customer name on shipments.
	PasswordHash string    // bcrypt hash of the account password.
	Role         Role      // Buyer or seller.
	Phone        string    // Optional contact phone.
	FarmName     string    // Farm or store name, only meaningful for sellers.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSeller reports whether the account sells products.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
