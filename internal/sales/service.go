package sales

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/stockbook/internal/inventory"
	"github.com/odyssey-erp/stockbook/internal/sales/shared"
)

// InventoryPort abstracts the stock operations a sale needs.
type InventoryPort interface {
	Get(ctx context.Context, code string) (inventory.Product, error)
	Withdraw(ctx context.Context, code string, qty int) (inventory.Product, error)
}

// Service records sales against inventory.
type Service struct {
	inventory InventoryPort
	ledger    *Ledger
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a sales service. A nil logger discards output.
func NewService(inv InventoryPort, ledger *Ledger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		inventory: inv,
		ledger:    ledger,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Lookup finds the product a sale would be taken from.
func (s *Service) Lookup(ctx context.Context, code string) (inventory.Product, error) {
	p, err := s.inventory.Get(ctx, code)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			return inventory.Product{}, ErrProductNotFound
		}
		return inventory.Product{}, fmt.Errorf("lookup product: %w", err)
	}
	return p, nil
}

// Sell takes qty units of the product and appends a record to the ledger.
// Stock and ledger stay untouched when qty exceeds available stock.
func (s *Service) Sell(ctx context.Context, code string, qty int) (SaleRecord, error) {
	product, err := s.Lookup(ctx, code)
	if err != nil {
		return SaleRecord{}, err
	}
	if qty > product.Quantity {
		s.logger.InfoContext(ctx, "sale rejected",
			slog.String("external_code", code),
			slog.Int("requested", qty),
			slog.Int("available", product.Quantity))
		return SaleRecord{}, ErrInsufficientStock
	}
	amount := shared.CalculateLineTotal(qty, product.UnitPrice)
	if _, err := s.inventory.Withdraw(ctx, code, qty); err != nil {
		if errors.Is(err, inventory.ErrInsufficientStock) {
			return SaleRecord{}, ErrInsufficientStock
		}
		return SaleRecord{}, fmt.Errorf("withdraw stock: %w", err)
	}
	record := SaleRecord{
		ID:          uuid.New(),
		Description: describe(product.Name, qty),
		Amount:      amount,
		SoldAt:      s.now(),
	}
	s.ledger.Append(record)
	s.logger.InfoContext(ctx, "sale recorded",
		slog.String("sale_id", record.ID.String()),
		slog.Int64("internal_code", product.InternalCode),
		slog.Int("quantity", qty),
		slog.Float64("amount", amount))
	return record, nil
}

// Count reports how many sales have been recorded.
func (s *Service) Count(ctx context.Context) int {
	return s.ledger.Len()
}

// History returns every recorded sale in chronological order.
func (s *Service) History(ctx context.Context) []SaleRecord {
	return s.ledger.List()
}
