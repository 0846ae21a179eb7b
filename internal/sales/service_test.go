package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/stockbook/internal/inventory"
)

// ============================================================================
// FIXTURES
// ============================================================================

func newTestServices(t *testing.T) (*Service, *inventory.Service, *Ledger) {
	t.Helper()
	inv := inventory.NewService(inventory.NewStore(), inventory.NewCodeGenerator(), nil)
	_, err := inv.Register(context.Background(), inventory.RegisterInput{Name: "Widget", ExternalCode: "W1", Quantity: 10, UnitPrice: 2.5})
	require.NoError(t, err)
	ledger := NewLedger()
	svc := NewService(inv, ledger, nil)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, inv, ledger
}

type failingInventory struct {
	product inventory.Product
	err     error
}

func (f failingInventory) Get(ctx context.Context, code string) (inventory.Product, error) {
	return f.product, nil
}

func (f failingInventory) Withdraw(ctx context.Context, code string, qty int) (inventory.Product, error) {
	return inventory.Product{}, f.err
}

// ============================================================================
// SELL
// ============================================================================

func TestSellDecrementsStockAndRecords(t *testing.T) {
	svc, inv, ledger := newTestServices(t)
	ctx := context.Background()

	record, err := svc.Sell(ctx, "W1", 4)
	require.NoError(t, err)
	assert.Equal(t, "Widget (Cantidad: 4)", record.Description)
	assert.InDelta(t, 10.0, record.Amount, 1e-9)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), record.SoldAt)

	p, err := inv.Get(ctx, "W1")
	require.NoError(t, err)
	require.Equal(t, 6, p.Quantity)
	require.Equal(t, 1, ledger.Len())
	require.Equal(t, 1, svc.Count(ctx))
}

func TestSellInsufficientStockLeavesStateUntouched(t *testing.T) {
	svc, inv, ledger := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Sell(ctx, "W1", 4)
	require.NoError(t, err)

	_, err = svc.Sell(ctx, "W1", 100)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	p, err := inv.Get(ctx, "W1")
	require.NoError(t, err)
	require.Equal(t, 6, p.Quantity)
	require.Equal(t, 1, ledger.Len())
}

func TestSellExactStock(t *testing.T) {
	svc, inv, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Sell(ctx, "W1", 10)
	require.NoError(t, err)
	p, err := inv.Get(ctx, "W1")
	require.NoError(t, err)
	require.Zero(t, p.Quantity)
}

func TestSellUnknownProduct(t *testing.T) {
	svc, _, ledger := newTestServices(t)
	_, err := svc.Sell(context.Background(), "nope", 1)
	require.ErrorIs(t, err, ErrProductNotFound)
	require.Zero(t, ledger.Len())
}

func TestSellWithdrawFailure(t *testing.T) {
	ledger := NewLedger()
	boom := errors.New("boom")
	svc := NewService(failingInventory{product: inventory.Product{Name: "X", Quantity: 5, UnitPrice: 1}, err: boom}, ledger, nil)

	_, err := svc.Sell(context.Background(), "X", 1)
	require.ErrorIs(t, err, boom)
	require.Zero(t, ledger.Len())
}

func TestRecordsSurviveProductEditsAndDeletion(t *testing.T) {
	svc, inv, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Sell(ctx, "W1", 2)
	require.NoError(t, err)
	_, err = inv.Rename(ctx, "W1", "Renamed")
	require.NoError(t, err)
	_, err = inv.SetPrice(ctx, "W1", 100)
	require.NoError(t, err)
	require.NoError(t, inv.Delete(ctx, "W1"))

	history := svc.History(ctx)
	require.Len(t, history, 1)
	require.Equal(t, "Widget (Cantidad: 2)", history[0].Description)
	require.InDelta(t, 5.0, history[0].Amount, 1e-9)
}

// ============================================================================
// LEDGER
// ============================================================================

func TestLedgerKeepsChronologicalOrder(t *testing.T) {
	l := NewLedger()
	require.Empty(t, l.List())

	l.Append(SaleRecord{Description: "a", Amount: 1})
	l.Append(SaleRecord{Description: "b", Amount: 2})
	l.Append(SaleRecord{Description: "c", Amount: 3})

	list := l.List()
	require.Len(t, list, 3)
	require.Equal(t, "a", list[0].Description)
	require.Equal(t, "c", list[2].Description)

	list[0].Description = "mutated"
	require.Equal(t, "a", l.List()[0].Description)
}
