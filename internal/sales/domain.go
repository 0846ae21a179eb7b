package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/stockbook/internal/inventory"
)

// SaleRecord is an immutable snapshot of a completed sale. It keeps no
// reference to the product it was taken from.
type SaleRecord struct {
	ID          uuid.UUID
	Description string
	Amount      float64
	SoldAt      time.Time
}

// ErrInsufficientStock indicates the requested quantity exceeds stock.
var ErrInsufficientStock = fmt.Errorf("sales: %w", inventory.ErrInsufficientStock)

// ErrProductNotFound indicates the sale target does not exist.
var ErrProductNotFound = fmt.Errorf("sales: %w", inventory.ErrProductNotFound)

func describe(name string, qty int) string {
	return fmt.Sprintf("%s (Cantidad: %d)", name, qty)
}
