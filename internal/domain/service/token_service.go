package service

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the caller identified by a verified access token.
type Principal struct {
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// TokenService verifies bearer tokens. Issuing them belongs to the auth service.
type TokenService interface {
	VerifyAccessToken(token string) (*Principal, error)
}
