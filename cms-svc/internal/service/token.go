package service

import (
	"fmt"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer signs HS256 access tokens carrying the username in "sub".
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	Now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		Now:    time.Now,
	}
}

func (j *JWTIssuer) TTL() time.Duration { return j.ttl }

func (j *JWTIssuer) Issue(username string) (string, time.Time, error) {
	now := j.Now()
	expires := now.Add(j.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies signature, algorithm and expiry and returns the subject.
// Every failure is reported as domain.ErrInvalidToken.
func (j *JWTIssuer) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithTimeFunc(j.Now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
