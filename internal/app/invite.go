package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// InviteService mints and verifies signed invite tokens for private
// tables. A token binds one match id to an expiry, so a join link cannot
// be replayed against another table.
type InviteService struct {
	secret string
	issuer string
	ttl    time.Duration
}

// DefaultInviteTTL bounds how long an invite link stays joinable.
const DefaultInviteTTL = 24 * time.Hour

// NewInviteService constructs an InviteService. A zero ttl falls back to
// DefaultInviteTTL.
func NewInviteService(secret, issuer string, ttl time.Duration) *InviteService {
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}
	return &InviteService{secret: secret, issuer: issuer, ttl: ttl}
}

// GenerateToken signs an invite for the given match on behalf of inviter.
func (s *InviteService) GenerateToken(matchID, inviter string) (string, error) {
	if s == nil || s.secret == "" {
		return "", fmt.Errorf("invite secret is not configured")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": inviter,
		"mid": matchID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify checks a token's signature and expiry and returns the match id
// it grants access to.
func (s *InviteService) Verify(tokenString string) (string, error) {
	if s == nil || s.secret == "" {
		return "", fmt.Errorf("invite secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid invite token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid invite token")
	}
	matchID, ok := claims["mid"].(string)
	if !ok || matchID == "" {
		return "", fmt.Errorf("invite token missing match id")
	}
	return matchID, nil
}
