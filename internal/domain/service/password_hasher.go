// Package service declares the ports the usecases need from infrastructure:
// hashing, tokens, event transport, push delivery and QR rendering.
package service

// PasswordHasher hashes account passwords and enforces the registration password policy.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool

	// ValidatePasswordStrength returns a domain validation error naming the first unmet rule.
	ValidatePasswordStrength(password string) error
}
