package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/odyssey-erp/stockbook/internal/app"
	"github.com/odyssey-erp/stockbook/internal/inventory"
	"github.com/odyssey-erp/stockbook/internal/prompt"
	"github.com/odyssey-erp/stockbook/internal/sales"
	"github.com/odyssey-erp/stockbook/internal/shared"
)

func main() {
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, os.Stderr)
	money := shared.NewMoneyFormatter(cfg.CurrencySymbol)

	inventoryService := inventory.NewService(inventory.NewStore(), inventory.NewCodeGenerator(), logger)
	salesService := sales.NewService(inventoryService, sales.NewLedger(), logger)

	menu := app.NewMenu(app.MenuParams{
		Logger:           logger,
		InventoryHandler: inventory.NewHandler(logger, inventoryService, money),
		SalesHandler:     sales.NewHandler(logger, salesService, money),
	})

	if err := menu.Run(ctx, prompt.NewReader(os.Stdin, os.Stdout)); err != nil {
		logger.Error("menu", slog.Any("error", err))
		os.Exit(1)
	}
}
