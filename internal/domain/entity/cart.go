package entity

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Cart aggregate errors. Usecases translate them into API errors.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNotEnoughStock  = errors.New("requested quantity exceeds stock")
	ErrLineNotFound    = errors.New("product not in cart")
	ErrShopMismatch    = errors.New("product does not belong to shop")
)

// CartLine is one product entry in a cart.
type CartLine struct {
	ShopID    uuid.UUID `json:"shop_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is the per-user staging area for a future order. Lines are kept
// ordered by AddedAt, most recent first, with at most one line per product.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartShopGroup is the display grouping of cart lines for one shop.
type CartShopGroup struct {
	ShopID uuid.UUID  `json:"shop_id"`
	Lines  []CartLine `json:"lines"`
}

// NewCart returns an empty cart for userID.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		UserID: userID,
		Lines:  []CartLine{},
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for productID.
func (c *Cart) Line(productID uuid.UUID) (CartLine, bool) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return CartLine{}, false
	}

	return c.Lines[idx], true
}

// AddLine adds quantity units of product to the cart, merging with an
// existing line. The cumulative quantity must not exceed product stock.
func (c *Cart) AddLine(shopID uuid.UUID, product *Product, quantity int, now time.Time) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if product.ShopID != shopID {
		return ErrShopMismatch
	}

	idx := c.indexOf(product.ID)
	cumulative := quantity
	if idx >= 0 {
		cumulative += c.Lines[idx].Quantity
	}
	if !product.HasStock(cumulative) {
		return ErrNotEnoughStock
	}

	if idx >= 0 {
		c.Lines[idx].Quantity = cumulative
		c.Lines[idx].AddedAt = now
	} else {
		c.Lines = append(c.Lines, CartLine{
			ShopID:    shopID,
			ProductID: product.ID,
			Quantity:  quantity,
			AddedAt:   now,
		})
	}

	c.sortLines()
	c.UpdatedAt = now

	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (c *Cart) UpdateQuantity(product *Product, quantity int, now time.Time) error {
	idx := c.indexOf(product.ID)
	if idx < 0 {
		return ErrLineNotFound
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if !product.HasStock(quantity) {
		return ErrNotEnoughStock
	}

	c.Lines[idx].Quantity = quantity
	c.UpdatedAt = now

	return nil
}

// RemoveLine drops the line for productID.
func (c *Cart) RemoveLine(productID uuid.UUID, now time.Time) error {
	idx := c.indexOf(productID)
	if idx < 0 {
		return ErrLineNotFound
	}

	c.Lines = slices.Delete(c.Lines, idx, idx+1)
	c.UpdatedAt = now

	return nil
}

// Clear removes every line.
func (c *Cart) Clear(now time.Time) {
	c.Lines = []CartLine{}
	c.UpdatedAt = now
}

// LinesForShop returns the lines of shopID in cart order.
func (c *Cart) LinesForShop(shopID uuid.UUID) []CartLine {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ShopID == shopID {
			lines = append(lines, line)
		}
	}

	return lines
}

// RemoveShopLines drops every line of shopID and returns how many were removed.
func (c *Cart) RemoveShopLines(shopID uuid.UUID, now time.Time) int {
	before := len(c.Lines)
	c.Lines = slices.DeleteFunc(c.Lines, func(line CartLine) bool {
		return line.ShopID == shopID
	})

	removed := before - len(c.Lines)
	if removed > 0 {
		c.UpdatedAt = now
	}

	return removed
}

// GroupByShop groups lines per shop, ordered by each shop's most recent line.
func (c *Cart) GroupByShop() []CartShopGroup {
	groups := make([]CartShopGroup, 0)
	index := make(map[uuid.UUID]int)

	for _, line := range c.Lines {
		pos, ok := index[line.ShopID]
		if !ok {
			pos = len(groups)
			index[line.ShopID] = pos
			groups = append(groups, CartShopGroup{ShopID: line.ShopID})
		}
		groups[pos].Lines = append(groups[pos].Lines, line)
	}

	return groups
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	return slices.IndexFunc(c.Lines, func(line CartLine) bool {
		return line.ProductID == productID
	})
}

func (c *Cart) sortLines() {
	slices.SortStableFunc(c.Lines, func(a, b CartLine) int {
		return b.AddedAt.Compare(a.AddedAt)
	})
}
