package inventory

import (
	"errors"
	"fmt"

	"github.com/odyssey-erp/stockbook/internal/shared"
)

// Product is a stocked item. ExternalCode is the operator-facing key and may
// change; InternalCode never does.
type Product struct {
	InternalCode int64   `validate:"gt=0"`
	ExternalCode string  `validate:"required"`
	Name         string  `validate:"required"`
	Quantity     int     `validate:"gte=0"`
	UnitPrice    float64 `validate:"gte=0"`
}

// RegisterInput describes a product to register.
type RegisterInput struct {
	Name         string  `validate:"required"`
	ExternalCode string  `validate:"required"`
	Quantity     int     `validate:"gte=0"`
	UnitPrice    float64 `validate:"gte=0"`
}

// ErrProductNotFound indicates no product is stored under the given code.
var ErrProductNotFound = fmt.Errorf("inventory: product %w", shared.ErrNotFound)

// ErrInsufficientStock triggered when a withdrawal exceeds available quantity.
var ErrInsufficientStock = errors.New("inventory: insufficient stock")

// ErrInvalidQuantity indicates a negative quantity.
var ErrInvalidQuantity = fmt.Errorf("inventory: quantity must be >= 0: %w", shared.ErrValidation)

// ErrInvalidPrice indicates a negative unit price.
var ErrInvalidPrice = fmt.Errorf("inventory: unit price must be >= 0: %w", shared.ErrValidation)

// CodeGenerator hands out internal product codes. Codes start at 1 and are
// never reused for the lifetime of the generator.
type CodeGenerator struct {
	last int64
}

// NewCodeGenerator returns a generator whose first code is 1.
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// Next issues the next code.
func (g *CodeGenerator) Next() int64 {
	g.last++
	return g.last
}

// Last reports the most recently issued code, or 0 if none was issued.
func (g *CodeGenerator) Last() int64 {
	return g.last
}

// Reset rewinds the generator so the next code is 1 again.
func (g *CodeGenerator) Reset() {
	g.last = 0
}
