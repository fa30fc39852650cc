package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	PurposeEmailConfirmation = "email_confirmation"

	emailConfirmationTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a session token for the user.
func (s *TokenService) Issue(userID, role string) (string, *Claims, error) {
	return s.sign(userID, role, "", s.ttl)
}

// IssueEmailConfirmation signs a short lived token that can only confirm
// the user's e-mail address.
func (s *TokenService) IssueEmailConfirmation(userID string) (string, error) {
	token, _, err := s.sign(userID, "", PurposeEmailConfirmation, emailConfirmationTTL)
	return token, err
}

// Parse validates a session token. Purpose-scoped tokens are rejected.
func (s *TokenService) Parse(token string) (*Claims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseEmailConfirmation returns the user id carried by a confirmation token.
func (s *TokenService) ParseEmailConfirmation(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposeEmailConfirmation {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *TokenService) sign(userID, role, purpose string, ttl time.Duration) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
