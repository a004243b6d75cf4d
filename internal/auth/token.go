package auth

import (
	"fmt"
	"strconv"
	"time"

	"bloglist/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "bloglist-api"

// Identity is the resolved subject of a verified bearer token. It is passed
// explicitly into service calls so the authorization contract stays visible
// at each call site.
type Identity struct {
	UserID   uint
	Username string
}

// TokenService issues and verifies HS256-signed bearer tokens. Tokens are
// stateless: validity is purely a signature and claims check, with an
// explicit expiry baked into every token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with secret. Tokens expire
// after ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token encoding the user's identity.
func (s *TokenService) Issue(user *models.User) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token signing secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10), // Subject (user ID as string)
		"username": user.Username,                           // Username (cached in token)
		"iss":      tokenIssuer,
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
		"jti":      uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodes the token and checks its signature, signing method and
// expiry. Any failure is surfaced uniformly as an unauthorized "token
// invalid" error so callers cannot distinguish tampering from expiry.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.NewUnauthorizedError("token invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.NewUnauthorizedError("token invalid")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, models.NewUnauthorizedError("token invalid")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, models.NewUnauthorizedError("token invalid")
	}

	username, _ := claims["username"].(string)

	return &Identity{UserID: uint(userID), Username: username}, nil
}
