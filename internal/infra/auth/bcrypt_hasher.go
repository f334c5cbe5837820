// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"localharvest/config"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/service"
)

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "letmein", "harvest"}

var defaultPasswordPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        128,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
}

type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and password strength configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultPasswordPolicy
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost returns a hasher with the default policy and the given cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, policy: defaultPasswordPolicy}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)

	switch {
	case h.policy.MinLength > 0 && length < h.policy.MinLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	case h.policy.MaxLength > 0 && length > h.policy.MaxLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	case h.policy.RequireLowercase && !hasRune(password, unicode.IsLower):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	case h.policy.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	case h.policy.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	case h.policy.RequireSpecial && !hasRune(password, isSpecial):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	case containsForbiddenWords(password, forbiddenPasswordWords):
		return domainerrors.ErrPasswordStrength.WithDetails("contains forbidden words")
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
