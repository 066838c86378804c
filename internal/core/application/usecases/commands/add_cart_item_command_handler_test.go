package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, storeID kernel.UUID, price string) *menu.Item {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewItem(storeID, "Margherita", p)
	require.NoError(t, err)
	return item
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	item := newTestItem(t, storeID, "9.50")

	catalog := new(MockMenuCatalog)
	catalog.On("GetItem", ctx, item.ID()).Return(item, nil).Twice()

	carts := newFakeCartStore()
	h := commands.NewAddCartItemCommandHandler(carts, catalog)

	cmd, err := commands.NewAddCartItemCommand("session-1", item.ID(), 2, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NoError(t, h.Handle(ctx, cmd))

	err = carts.View(ctx, "session-1", func(c *cart.Cart) error {
		snap, snapErr := c.Snapshot()
		require.NoError(t, snapErr)
		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 4, snap.Lines[0].Quantity)
		return nil
	})
	require.NoError(t, err)
	catalog.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()

	catalog := new(MockMenuCatalog)
	catalog.On("GetItem", ctx, itemID).
		Return(nil, errs.NewObjectNotFoundError("menuItemID", itemID)).Once()

	h := commands.NewAddCartItemCommandHandler(newFakeCartStore(), catalog)
	cmd, err := commands.NewAddCartItemCommand("session-1", itemID, 1, nil, nil, "")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddCartItemCommandHandler_Handle_StoreMismatch(t *testing.T) {
	ctx := t.Context()
	first := newTestItem(t, kernel.NewUUID(), "9.50")
	second := newTestItem(t, kernel.NewUUID(), "7.00")

	catalog := new(MockMenuCatalog)
	catalog.On("GetItem", ctx, mock.Anything).Return(first, nil).Once()
	catalog.On("GetItem", ctx, mock.Anything).Return(second, nil).Once()

	carts := newFakeCartStore()
	h := commands.NewAddCartItemCommandHandler(carts, catalog)

	cmd1, err := commands.NewAddCartItemCommand("session-1", first.ID(), 1, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd1))

	cmd2, err := commands.NewAddCartItemCommand("session-1", second.ID(), 1, nil, nil, "")
	require.NoError(t, err)
	err = h.Handle(ctx, cmd2)

	require.ErrorIs(t, err, errs.ErrStoreMismatch)
}

func TestAddCartItemCommand_Validation(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AddCartItemCommand
		require.Error(t, cmd.Validate())
	})

	t.Run("empty session rejected", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("", kernel.NewUUID(), 1, nil, nil, "")
		require.ErrorIs(t, err, commands.ErrSessionIDIsRequired)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("s", kernel.NewUUID(), 0, nil, nil, "")
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})
}
