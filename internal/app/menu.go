package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/odyssey-erp/stockbook/internal/inventory"
	"github.com/odyssey-erp/stockbook/internal/prompt"
	"github.com/odyssey-erp/stockbook/internal/sales"
)

const msgInvalidOption = "Opción inválida. Por favor, seleccione nuevamente."

// MenuParams groups dependencies for the menu controller.
type MenuParams struct {
	Logger           *slog.Logger
	InventoryHandler *inventory.Handler
	SalesHandler     *sales.Handler
}

// Menu runs the main, inventory and sales menus.
type Menu struct {
	logger    *slog.Logger
	inventory *inventory.Handler
	sales     *sales.Handler
}

// NewMenu constructs the menu controller.
func NewMenu(p MenuParams) *Menu {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Menu{logger: logger, inventory: p.InventoryHandler, sales: p.SalesHandler}
}

// Run loops on the main menu until the operator exits or input ends. Both
// cases return nil.
func (m *Menu) Run(ctx context.Context, in *prompt.Reader) error {
	err := m.runMain(ctx, in)
	if errors.Is(err, prompt.ErrInputClosed) {
		m.logger.InfoContext(ctx, "input closed, leaving menu")
		return nil
	}
	return err
}

func (m *Menu) runMain(ctx context.Context, in *prompt.Reader) error {
	out := in.Out()
	for {
		fmt.Fprintln(out, "          MENU PRINCIPAL")
		fmt.Fprintln(out, "Seleccione una opción:")
		fmt.Fprintln(out, "  1. Inventario")
		fmt.Fprintln(out, "  2. Ventas")
		fmt.Fprintln(out, "  3. Salir")
		option, err := in.Token("Opción: ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = m.runInventory(ctx, in)
		case "2":
			err = m.runSales(ctx, in)
		case "3":
			fmt.Fprintln(out, "Saliendo del programa.")
			return nil
		default:
			fmt.Fprintln(out, msgInvalidOption)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
}

func (m *Menu) runInventory(ctx context.Context, in *prompt.Reader) error {
	out := in.Out()
	for {
		fmt.Fprintln(out, "          INVENTARIO")
		m.inventory.List(ctx, in)
		fmt.Fprintln(out, "Opciones:")
		fmt.Fprintln(out, "  1. Ingresar producto")
		fmt.Fprintln(out, "  2. Editar producto")
		fmt.Fprintln(out, "  3. Volver al menú principal")
		option, err := in.Token("Opción: ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out)

		switch option {
		case "1":
			err = m.inventory.Register(ctx, in)
		case "2":
			err = m.inventory.Edit(ctx, in)
		case "3":
			fmt.Fprintln(out, "Volviendo al menú principal.")
			return nil
		default:
			fmt.Fprintln(out, msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) runSales(ctx context.Context, in *prompt.Reader) error {
	out := in.Out()
	for {
		fmt.Fprintln(out, "          VENTAS")
		fmt.Fprintln(out, "Seleccione una opción:")
		fmt.Fprintln(out, "  1. Nueva venta")
		fmt.Fprintln(out, "  2. Registro de ventas")
		fmt.Fprintln(out, "  3. Volver al menú principal")
		option, err := in.Token("Opción: ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out)

		switch option {
		case "1":
			err = m.sales.Sell(ctx, in)
		case "2":
			m.sales.History(ctx, in)
		case "3":
			fmt.Fprintln(out, "Volviendo al menú principal.")
			return nil
		default:
			fmt.Fprintln(out, msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}
