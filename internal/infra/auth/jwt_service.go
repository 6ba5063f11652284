// Package auth verifies access tokens minted by the auth service.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

const (
	accessTokenType = "access"

	// clockSkew tolerated on exp/nbf between this service and the issuer.
	clockSkew = 30 * time.Second
)

var ErrInvalidToken = errors.New("invalid token")

// accessClaims is the claim set the auth service writes into access tokens.
type accessClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

type hmacVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &hmacVerifier{
		secret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}, nil
}

func (v *hmacVerifier) VerifyAccessToken(token string) (*service.Principal, error) {
	var claims accessClaims

	if _, err := v.parser.ParseWithClaims(token, &claims, v.key); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if claims.Type != accessTokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}

	return &service.Principal{
		UserID:    userID,
		Roles:     claims.Roles,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (v *hmacVerifier) key(*jwt.Token) (any, error) {
	return v.secret, nil
}
