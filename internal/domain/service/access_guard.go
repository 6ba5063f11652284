package service

import (
	"context"

	"github.com/google/uuid"
)

// Participant describes how a user relates to an order.
type Participant struct {
	IsBuyer bool
	IsOwner bool // Owner of the order's shop
}

// Any reports whether the user takes part in the order at all.
func (p Participant) Any() bool {
	return p.IsBuyer || p.IsOwner
}

// AccessGuard answers ownership questions before state is mutated.
type AccessGuard interface {
	// ResolveShopOwnership reports whether userID owns shopID.
	ResolveShopOwnership(ctx context.Context, shopID, userID uuid.UUID) (bool, error)

	// ResolveOrderParticipant reports whether userID bought the order or owns its shop.
	ResolveOrderParticipant(ctx context.Context, orderID, userID uuid.UUID) (Participant, error)
}
