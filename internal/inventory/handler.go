package inventory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/odyssey-erp/stockbook/internal/prompt"
	"github.com/odyssey-erp/stockbook/internal/shared"
)

const (
	msgNotFound      = "El producto no se encuentra en el inventario."
	msgInvalidOption = "Opción inválida. Por favor, seleccione nuevamente."
)

// Handler drives inventory screens on the terminal.
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

// Register asks for a new product and stores it.
func (h *Handler) Register(ctx context.Context, in *prompt.Reader) error {
	name, err := in.String("Ingrese el nombre del producto: ")
	if err != nil {
		return err
	}
	code, err := in.String("Ingrese el código del producto: ")
	if err != nil {
		return err
	}
	qty, err := in.NonNegativeInt("Ingrese la cantidad del producto: ")
	if err != nil {
		return err
	}
	price, err := in.NonNegativeDecimal("Ingrese el precio del producto: ")
	if err != nil {
		return err
	}
	if _, err := h.service.Register(ctx, RegisterInput{Name: name, ExternalCode: code, Quantity: qty, UnitPrice: price}); err != nil {
		h.logger.ErrorContext(ctx, "register product", slog.Any("error", err))
		fmt.Fprintln(in.Out(), "No se pudo registrar el producto.")
		return nil
	}
	fmt.Fprintln(in.Out(), "Producto registrado exitosamente.")
	return nil
}

// List prints the whole inventory.
func (h *Handler) List(ctx context.Context, in *prompt.Reader) {
	out := in.Out()
	if h.service.Count(ctx) == 0 {
		fmt.Fprintln(out, "Aún no tienes productos en el inventario.")
		return
	}
	fmt.Fprintln(out, "Inventario de productos:")
	for _, p := range h.service.List(ctx) {
		fmt.Fprintf(out, "Código externo: %s, Nombre: %s, Cantidad: %d, Precio: %s\n",
			p.ExternalCode, p.Name, p.Quantity, h.money.Format(p.UnitPrice))
	}
}

// Edit runs the field editor for one product until the operator finishes or
// deletes it.
func (h *Handler) Edit(ctx context.Context, in *prompt.Reader) error {
	out := in.Out()
	code, err := in.String("Ingrese el código del producto que desea editar: ")
	if err != nil {
		return err
	}
	if _, err := h.service.Get(ctx, code); err != nil {
		fmt.Fprintln(out, msgNotFound)
		return nil
	}

	for {
		product, err := h.service.Get(ctx, code)
		if err != nil {
			fmt.Fprintln(out, msgNotFound)
			return nil
		}
		fmt.Fprintln(out, "Seleccione el dato que desea cambiar:")
		fmt.Fprintf(out, "  1. Nombre: %s\n", product.Name)
		fmt.Fprintf(out, "  2. Código externo: %s\n", product.ExternalCode)
		fmt.Fprintf(out, "  3. Cantidad: %d\n", product.Quantity)
		fmt.Fprintf(out, "  4. Precio: %s\n", h.money.Amount(product.UnitPrice))
		fmt.Fprintln(out, "  5. Eliminar producto")
		fmt.Fprintln(out, "  6. Finalizar edición")
		option, err := in.Token("Opción: ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			name, err := in.String("Nuevo nombre: ")
			if err != nil {
				return err
			}
			h.report(ctx, out, "rename product", func() error {
				_, err := h.service.Rename(ctx, code, name)
				return err
			})
		case "2":
			newCode, err := in.String("Nuevo código externo: ")
			if err != nil {
				return err
			}
			if _, err := h.service.ChangeCode(ctx, code, newCode); err != nil {
				h.logger.ErrorContext(ctx, "change external code", slog.Any("error", err))
				fmt.Fprintln(out, "No se pudo actualizar el producto.")
				continue
			}
			code = strings.TrimSpace(newCode)
		case "3":
			qty, err := in.NonNegativeInt("Nueva cantidad: ")
			if err != nil {
				return err
			}
			h.report(ctx, out, "set quantity", func() error {
				_, err := h.service.SetQuantity(ctx, code, qty)
				return err
			})
		case "4":
			price, err := in.NonNegativeDecimal("Nuevo precio: ")
			if err != nil {
				return err
			}
			h.report(ctx, out, "set price", func() error {
				_, err := h.service.SetPrice(ctx, code, price)
				return err
			})
		case "5":
			answer, err := in.Token("¿Está seguro de que desea eliminar este producto? (s/n): ")
			if err != nil {
				return err
			}
			if !confirmed(answer) {
				continue
			}
			if err := h.service.Delete(ctx, code); err != nil {
				h.logger.WarnContext(ctx, "delete product", slog.Any("error", err))
			}
			fmt.Fprintln(out, "Producto eliminado del inventario.")
			return nil
		case "6":
			fmt.Fprintln(out, "Finalizando edición.")
			return nil
		default:
			fmt.Fprintln(out, msgInvalidOption)
		}
	}
}

func (h *Handler) report(ctx context.Context, out io.Writer, action string, fn func() error) {
	if err := fn(); err != nil {
		h.logger.ErrorContext(ctx, action, slog.Any("error", err))
		fmt.Fprintln(out, "No se pudo actualizar el producto.")
	}
}

// confirmed accepts any answer starting with s or S.
func confirmed(answer string) bool {
	return strings.HasPrefix(answer, "s") || strings.HasPrefix(answer, "S")
}
