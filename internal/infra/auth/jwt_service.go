package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"localharvest/config"
	"localharvest/internal/domain/service"
	"localharvest/internal/errors"
)

const accessTokenType = "access"

type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
}

// NewJWTService creates an HS256 token service from the configured secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenDuration > 0 {
		ttl = cfg.Auth.AccessTokenDuration
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
	}, nil
}

func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
		"type": accessTokenType,
		"role": role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	if tokenType, _ := mapClaims["type"].(string); tokenType != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	role, _ := mapClaims["role"].(string)

	claims := &service.Claims{UserID: userID, Role: role}
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
