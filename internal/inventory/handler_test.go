package inventory

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/stockbook/internal/prompt"
	"github.com/odyssey-erp/stockbook/internal/shared"
)

func newTestHandler(t *testing.T) (*Handler, *Service) {
	t.Helper()
	svc, _ := newTestService()
	return NewHandler(nil, svc, shared.NewMoneyFormatter("$")), svc
}

func script(lines ...string) (*prompt.Reader, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return prompt.NewReader(strings.NewReader(strings.Join(lines, "\n")+"\n"), out), out
}

func seedWidget(t *testing.T, svc *Service) {
	t.Helper()
	_, err := svc.Register(context.Background(), RegisterInput{Name: "Widget", ExternalCode: "W1", Quantity: 10, UnitPrice: 2.5})
	require.NoError(t, err)
}

func TestHandlerRegisterAndList(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()

	in, out := script("Widget", "W1", "ten", "10", "2.50")
	require.NoError(t, h.Register(ctx, in))
	require.Contains(t, out.String(), "Producto registrado exitosamente.")
	require.Len(t, svc.List(ctx), 1)

	in, out = script()
	h.List(ctx, in)
	require.Contains(t, out.String(), "Código externo: W1, Nombre: Widget, Cantidad: 10, Precio: $2.50")
}

func TestHandlerPricesPrintWithoutGrouping(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Name: "Server", ExternalCode: "S1", Quantity: 2, UnitPrice: 1234.5})
	require.NoError(t, err)

	in, out := script()
	h.List(ctx, in)
	require.Contains(t, out.String(), "Código externo: S1, Nombre: Server, Cantidad: 2, Precio: $1234.50")

	in, out = script("S1", "6")
	require.NoError(t, h.Edit(ctx, in))
	require.Contains(t, out.String(), "  4. Precio: 1234.50\n")
}

func TestHandlerListEmpty(t *testing.T) {
	h, _ := newTestHandler(t)
	in, out := script()
	h.List(context.Background(), in)
	require.Equal(t, "Aún no tienes productos en el inventario.\n", out.String())
}

func TestHandlerEditNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	in, out := script("ZZ")
	require.NoError(t, h.Edit(context.Background(), in))
	require.Contains(t, out.String(), msgNotFound)
	require.NotContains(t, out.String(), "Seleccione el dato")
}

func TestHandlerEditFields(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	seedWidget(t, svc)

	in, out := script("W1", "1", "Gizmo", "3", "7", "4", "1.25", "9", "6")
	require.NoError(t, h.Edit(ctx, in))
	require.Contains(t, out.String(), msgInvalidOption)
	require.Contains(t, out.String(), "Finalizando edición.")

	got, err := svc.Get(ctx, "W1")
	require.NoError(t, err)
	require.Equal(t, "Gizmo", got.Name)
	require.Equal(t, 7, got.Quantity)
	require.InDelta(t, 1.25, got.UnitPrice, 1e-9)
}

func TestHandlerEditRekeyKeepsEditingNewCode(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	seedWidget(t, svc)

	in, out := script("W1", "2", "W2", "3", "1", "6")
	require.NoError(t, h.Edit(ctx, in))
	require.Contains(t, out.String(), "  2. Código externo: W2")

	_, err := svc.Get(ctx, "W1")
	require.ErrorIs(t, err, ErrProductNotFound)
	got, err := svc.Get(ctx, "W2")
	require.NoError(t, err)
	require.Equal(t, 1, got.Quantity)
	require.Equal(t, int64(1), got.InternalCode)
}

func TestHandlerEditDeleteDeclined(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	seedWidget(t, svc)

	in, out := script("W1", "5", "n", "6")
	require.NoError(t, h.Edit(ctx, in))
	require.NotContains(t, out.String(), "Producto eliminado")
	require.Equal(t, 2, strings.Count(out.String(), "Seleccione el dato que desea cambiar:"))

	got, err := svc.Get(ctx, "W1")
	require.NoError(t, err)
	require.Equal(t, Product{InternalCode: 1, ExternalCode: "W1", Name: "Widget", Quantity: 10, UnitPrice: 2.5}, got)
}

func TestHandlerEditDeleteConfirmedEndsSession(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	seedWidget(t, svc)

	// Lines after the confirmation must stay unread.
	in, out := script("W1", "5", "S", "6")
	require.NoError(t, h.Edit(ctx, in))
	require.Contains(t, out.String(), "Producto eliminado del inventario.")
	require.NotContains(t, out.String(), "Finalizando edición.")
	require.Empty(t, svc.List(ctx))

	token, err := in.Token("")
	require.NoError(t, err)
	require.Equal(t, "6", token)
}

func TestHandlerEditInputClosed(t *testing.T) {
	h, svc := newTestHandler(t)
	seedWidget(t, svc)

	in, _ := script("W1")
	err := h.Edit(context.Background(), in)
	require.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestConfirmed(t *testing.T) {
	require.True(t, confirmed("s"))
	require.True(t, confirmed("Si"))
	require.False(t, confirmed("n"))
	require.False(t, confirmed(""))
	require.False(t, confirmed("yes"))
}
