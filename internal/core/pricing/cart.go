// Package pricing holds the sales terminal's cart, totals and tender arithmetic.
// Every operation takes the prior state and returns a new value; inputs are never mutated.
package pricing

import (
	"fmt"
	"strings"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineField names an operator-editable numeric field on a cart line.
type LineField string

const (
	FieldUnitPrice    LineField = "customPrice"
	FieldLineDiscount LineField = "itemDiscount"
)

// ParseLineField accepts both the wire names and the descriptive names.
func ParseLineField(s string) (LineField, error) {
	switch strings.TrimSpace(s) {
	case "customPrice", "unitPrice":
		return FieldUnitPrice, nil
	case "itemDiscount", "lineDiscount":
		return FieldLineDiscount, nil
	}
	return "", fmt.Errorf("%w: unknown cart line field %q", apperrors.ErrValidation, s)
}

// StockLookup gives read-only access to current stock by product id.
type StockLookup interface {
	StockOf(productID string) (int, bool)
}

// Catalog is a StockLookup over an in-memory product list.
type Catalog map[string]domain.Product

// NewCatalog indexes products by id.
func NewCatalog(products []domain.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ProductID] = p
	}
	return c
}

func (c Catalog) StockOf(productID string) (int, bool) {
	p, ok := c[productID]
	if !ok {
		return 0, false
	}
	return p.Stock, true
}

// AddLine adds one unit of product to the cart.
func AddLine(cart domain.Cart, product domain.Product) (domain.Cart, error) {
	if !product.SalePrice.IsPositive() {
		return cart, fmt.Errorf("%w: price not available", apperrors.ErrValidation)
	}
	if product.Stock <= 0 {
		return cart, fmt.Errorf("%w: %s is out of stock", apperrors.ErrValidation, product.Name)
	}

	next := cart.Clone()
	if i := next.Find(product.ProductID); i >= 0 {
		if next[i].Quantity+1 > product.Stock {
			return cart, stockError(product.Name, product.Stock)
		}
		next[i].Quantity++
		next[i].StockAtAdd = product.Stock
		return next, nil
	}

	return append(next, domain.CartLine{
		ProductID:    product.ProductID,
		Name:         product.Name,
		Quantity:     1,
		UnitPrice:    product.SalePrice,
		LineDiscount: decimal.Zero,
		StockAtAdd:   product.Stock,
	}), nil
}

// SetLineField replaces the unit price or line discount of a line.
// Input that does not parse as a number, or is negative, becomes zero.
func SetLineField(cart domain.Cart, productID string, field LineField, raw string) domain.Cart {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		value = decimal.Zero
	}

	next := cart.Clone()
	i := next.Find(productID)
	if i < 0 {
		return next
	}
	switch field {
	case FieldUnitPrice:
		next[i].UnitPrice = value
	case FieldLineDiscount:
		next[i].LineDiscount = value
	}
	return next
}

// SetLineQuantity sets the quantity of a line, checking it against current stock.
// A quantity of zero or less removes the line.
func SetLineQuantity(cart domain.Cart, productID string, stock StockLookup, quantity int) (domain.Cart, error) {
	i := cart.Find(productID)
	if quantity <= 0 && i >= 0 {
		next := make(domain.Cart, 0, len(cart)-1)
		next = append(next, cart[:i]...)
		return append(next, cart[i+1:]...), nil
	}

	available, ok := stock.StockOf(productID)
	if !ok {
		return cart, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	if i < 0 {
		return cart, fmt.Errorf("%w: product %s is not in the cart", apperrors.ErrValidation, productID)
	}
	if quantity > available {
		return cart, fmt.Errorf("%w: only %d in stock", apperrors.ErrValidation, available)
	}

	next := cart.Clone()
	next[i].Quantity = quantity
	next[i].StockAtAdd = available
	return next, nil
}

func stockError(name string, available int) error {
	return fmt.Errorf("%w: only %d %s(s) available", apperrors.ErrValidation, available, name)
}
