package sales

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/odyssey-erp/stockbook/internal/prompt"
	"github.com/odyssey-erp/stockbook/internal/shared"
)

// Handler drives sales screens on the terminal.
type Handler struct {
	logger  *slog.Logger
	service *Service
	money   *shared.MoneyFormatter
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, money *shared.MoneyFormatter) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{logger: logger, service: service, money: money}
}

// Sell asks for a product and quantity and records the sale.
func (h *Handler) Sell(ctx context.Context, in *prompt.Reader) error {
	out := in.Out()
	code, err := in.String("Ingrese el código del producto a vender: ")
	if err != nil {
		return err
	}
	if _, err := h.service.Lookup(ctx, code); err != nil {
		fmt.Fprintln(out, "El producto no se encuentra en el inventario.")
		return nil
	}
	qty, err := in.NonNegativeInt("Ingrese la cantidad a vender: ")
	if err != nil {
		return err
	}
	record, err := h.service.Sell(ctx, code, qty)
	switch {
	case errors.Is(err, ErrInsufficientStock):
		fmt.Fprintln(out, "No hay suficiente cantidad en el inventario.")
	case errors.Is(err, ErrProductNotFound):
		fmt.Fprintln(out, "El producto no se encuentra en el inventario.")
	case err != nil:
		h.logger.ErrorContext(ctx, "sell", slog.Any("error", err))
		fmt.Fprintln(out, "No se pudo registrar la venta.")
	default:
		fmt.Fprintf(out, "Venta realizada exitosamente. Precio total: %s\n", h.money.Format(record.Amount))
	}
	return nil
}

// History prints the sales ledger.
func (h *Handler) History(ctx context.Context, in *prompt.Reader) {
	out := in.Out()
	if h.service.Count(ctx) == 0 {
		fmt.Fprintln(out, "Aún no se han realizado ventas.")
		return
	}
	fmt.Fprintln(out, "Registro de ventas:")
	for _, r := range h.service.History(ctx) {
		fmt.Fprintf(out, "Producto: %s, Precio: %s\n", r.Description, h.money.Format(r.Amount))
	}
}
