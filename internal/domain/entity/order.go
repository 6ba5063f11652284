package entity

import (
	"errors"
	"time"

	"bazaar/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidTransition is returned when an order cannot move to the requested status.
var ErrInvalidTransition = errors.New("invalid order status transition")

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusDeclined OrderStatus = "declined"
)

// orderTransitions lists the statuses reachable from each status.
// Approved and declined are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:  {OrderStatusApproved, OrderStatusDeclined},
	OrderStatusApproved: {},
	OrderStatusDeclined: {},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// OrderLine is an immutable snapshot of a product at checkout.
type OrderLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
}

// Subtotal is UnitPrice x Quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a checkout of one shop's cart lines by a buyer.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	BuyerID       uuid.UUID       `json:"buyer_id"`
	ShopID        uuid.UUID       `json:"shop_id"`
	Lines         []OrderLine     `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	Status        OrderStatus     `json:"status"`
	DeclineReason string          `json:"decline_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewOrder builds a pending order. The total is computed once here and the
// currency is taken from the first line.
func NewOrder(buyerID, shopID uuid.UUID, lines []OrderLine, now time.Time) *Order {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	currency := constants.DefaultCurrency
	if len(lines) > 0 && lines[0].Currency != "" {
		currency = lines[0].Currency
	}

	return &Order{
		ID:        uuid.New(),
		BuyerID:   buyerID,
		ShopID:    shopID,
		Lines:     lines,
		Total:     total,
		Currency:  currency,
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasMixedCurrency reports whether the lines use more than one currency.
func HasMixedCurrency(lines []OrderLine) bool {
	for _, line := range lines {
		if line.Currency != lines[0].Currency {
			return true
		}
	}

	return false
}

// Transition moves the order to status to.
func (o *Order) Transition(to OrderStatus, now time.Time) error {
	if !CanTransition(o.Status, to) {
		return ErrInvalidTransition
	}

	o.Status = to
	o.UpdatedAt = now

	return nil
}

// Approve moves a pending order to approved.
func (o *Order) Approve(now time.Time) error {
	return o.Transition(OrderStatusApproved, now)
}

// Decline moves a pending order to declined with an optional reason.
func (o *Order) Decline(reason string, now time.Time) error {
	if err := o.Transition(OrderStatusDeclined, now); err != nil {
		return err
	}
	o.DeclineReason = reason

	return nil
}
