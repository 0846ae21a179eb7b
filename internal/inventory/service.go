package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/stockbook/internal/shared"
)

// Service coordinates inventory operations on top of the store.
type Service struct {
	store     *Store
	codes     *CodeGenerator
	validator *validator.Validate
	logger    *slog.Logger
}

// NewService builds Service. A nil logger discards output.
func NewService(store *Store, codes *CodeGenerator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, codes: codes, validator: validator.New(), logger: logger}
}

// Register creates a product with a fresh internal code. A product already
// stored under the same external code is replaced.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.ExternalCode = strings.TrimSpace(input.ExternalCode)
	if err := s.validator.Struct(input); err != nil {
		return Product{}, fmt.Errorf("inventory: register: %w: %w", shared.ErrValidation, err)
	}
	product := Product{
		InternalCode: s.codes.Next(),
		ExternalCode: input.ExternalCode,
		Name:         input.Name,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
	}
	if prev, ok := s.store.Lookup(product.ExternalCode); ok {
		s.logger.WarnContext(ctx, "external code reused, replacing product",
			slog.String("external_code", product.ExternalCode),
			slog.Int64("replaced_internal_code", prev.InternalCode))
	}
	s.store.Insert(product)
	s.logger.InfoContext(ctx, "product registered",
		slog.Int64("internal_code", product.InternalCode),
		slog.String("external_code", product.ExternalCode))
	return product, nil
}

// List returns every product ordered by external code.
func (s *Service) List(ctx context.Context) []Product {
	return s.store.List()
}

// Count reports how many products are stored.
func (s *Service) Count(ctx context.Context) int {
	return s.store.Len()
}

// Get returns the product stored under code.
func (s *Service) Get(ctx context.Context, code string) (Product, error) {
	p, ok := s.store.Lookup(code)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// Rename overwrites the product name.
func (s *Service) Rename(ctx context.Context, code, name string) (Product, error) {
	return s.update(ctx, code, func(p *Product) error {
		p.Name = strings.TrimSpace(name)
		return nil
	})
}

// SetQuantity overwrites the stock level.
func (s *Service) SetQuantity(ctx context.Context, code string, qty int) (Product, error) {
	return s.update(ctx, code, func(p *Product) error {
		if qty < 0 {
			return ErrInvalidQuantity
		}
		p.Quantity = qty
		return nil
	})
}

// SetPrice overwrites the unit price.
func (s *Service) SetPrice(ctx context.Context, code string, price float64) (Product, error) {
	return s.update(ctx, code, func(p *Product) error {
		if price < 0 {
			return ErrInvalidPrice
		}
		p.UnitPrice = price
		return nil
	})
}

// ChangeCode rekeys the product from oldCode to newCode, keeping its identity.
// A different product already stored under newCode is replaced.
func (s *Service) ChangeCode(ctx context.Context, oldCode, newCode string) (Product, error) {
	newCode = strings.TrimSpace(newCode)
	if newCode == "" {
		return Product{}, fmt.Errorf("inventory: external code required: %w", shared.ErrValidation)
	}
	if _, ok := s.store.Lookup(oldCode); !ok {
		return Product{}, ErrProductNotFound
	}
	if prev, ok := s.store.Lookup(newCode); ok && newCode != oldCode {
		s.logger.WarnContext(ctx, "external code reused, replacing product",
			slog.String("external_code", newCode),
			slog.Int64("replaced_internal_code", prev.InternalCode))
	}
	p, _ := s.store.Rekey(oldCode, newCode)
	s.logger.InfoContext(ctx, "product rekeyed",
		slog.Int64("internal_code", p.InternalCode),
		slog.String("from", oldCode),
		slog.String("to", newCode))
	return p, nil
}

// Delete removes the product stored under code.
func (s *Service) Delete(ctx context.Context, code string) error {
	p, ok := s.store.Lookup(code)
	if !ok {
		return ErrProductNotFound
	}
	s.store.Remove(code)
	s.logger.InfoContext(ctx, "product deleted",
		slog.Int64("internal_code", p.InternalCode),
		slog.String("external_code", code))
	return nil
}

// Withdraw takes qty units out of stock. Nothing changes when qty exceeds the
// available quantity.
func (s *Service) Withdraw(ctx context.Context, code string, qty int) (Product, error) {
	return s.update(ctx, code, func(p *Product) error {
		if qty < 0 {
			return ErrInvalidQuantity
		}
		if qty > p.Quantity {
			return ErrInsufficientStock
		}
		p.Quantity -= qty
		return nil
	})
}

func (s *Service) update(ctx context.Context, code string, fn func(*Product) error) (Product, error) {
	p, ok := s.store.Lookup(code)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	if err := fn(&p); err != nil {
		return Product{}, err
	}
	if err := s.validator.Struct(p); err != nil {
		return Product{}, fmt.Errorf("inventory: update %s: %w: %w", code, shared.ErrValidation, err)
	}
	s.store.Insert(p)
	s.logger.DebugContext(ctx, "product updated", slog.String("external_code", code))
	return p, nil
}
