package jwtservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
)

var (
	tokenTTL = time.Hour
)

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

type JWTService struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateToken issues a session token for the given owner. Used by tooling
// and tests; in production the token comes from the auth provider.
func (s *JWTService) GenerateToken(userID, email string) (string, error) {
	now := s.now()
	claims := &JWTClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: token parsing error: %w", errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return nil, fmt.Errorf("%w: empty user id", errorvalues.ErrInvalidToken)
	}
	return claims, nil
}

// Session holds the current user's token. OwnerID reports false once the
// token is missing, invalid or expired.
type Session struct {
	service *JWTService
	token   string
}

func NewSession(service *JWTService, token string) *Session {
	return &Session{service: service, token: token}
}

func (s *Session) OwnerID() (string, bool) {
	if s.token == "" {
		return "", false
	}
	claims, err := s.service.ParseToken(s.token)
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}
