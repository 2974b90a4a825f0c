package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"namas_storefront/internal/bus"
	"namas_storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mu     sync.Mutex
	items  []models.CartItem
	getErr error
	putErr error
	writes int
}

func (m *mockGateway) GetCart(context.Context) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	items := make([]models.CartItem, len(m.items))
	copy(items, m.items)
	return items, nil
}

func (m *mockGateway) ReplaceCart(_ context.Context, items []models.CartItem) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.items = make([]models.CartItem, len(items))
	copy(m.items, items)
	m.writes++
	return nil, nil
}

func newController(gw *mockGateway) (*Controller, *int) {
	b := bus.New()
	updates := 0
	b.SubscribeCartUpdated(func(bus.CartUpdated) { updates++ })
	return NewController(gw, b), &updates
}

func TestAddNewItem(t *testing.T) {
	gw := &mockGateway{}
	ctrl, updates := newController(gw)

	item := models.CartItem{ProductID: "A", Name: "Bracelet", Quantity: 2, Inventory: 5, Price: 10}
	require.NoError(t, ctrl.Add(context.Background(), item))

	items, err := ctrl.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
	assert.Equal(t, 1, *updates)
}

func TestAddMergesAndClampsToInventory(t *testing.T) {
	gw := &mockGateway{items: []models.CartItem{
		{ProductID: "A", Quantity: 2, Inventory: 5, Price: 10},
	}}
	ctrl, _ := newController(gw)

	err := ctrl.Add(context.Background(), models.CartItem{ProductID: "A", Quantity: 4, Inventory: 5, Price: 10})
	require.NoError(t, err)

	items, err := ctrl.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	// 2+4 dépasse le stock de 5 : écrêté, jamais d'erreur
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddMergeWithinInventory(t *testing.T) {
	gw := &mockGateway{items: []models.CartItem{
		{ProductID: "A", Quantity: 1, Inventory: 5, Price: 10},
	}}
	ctrl, _ := newController(gw)

	require.NoError(t, ctrl.Add(context.Background(), models.CartItem{ProductID: "A", Quantity: 3}))

	items, _ := ctrl.Get(context.Background())
	assert.Equal(t, 4, items[0].Quantity)
}

func TestAddCustomizedItemsNeverMerge(t *testing.T) {
	gw := &mockGateway{}
	ctrl, _ := newController(gw)

	custom := models.CartItem{ProductID: "", Name: "Customized Bracelet", Quantity: 1, Inventory: 1, Price: 120, Category: "customized_bracelet"}
	require.NoError(t, ctrl.Add(context.Background(), custom))
	require.NoError(t, ctrl.Add(context.Background(), custom))

	items, err := ctrl.Get(context.Background())
	require.NoError(t, err)
	// Deux personnalisations restent deux lignes distinctes
	assert.Len(t, items, 2)
}

func TestRemoveIsIdempotent(t *testing.T) {
	gw := &mockGateway{items: []models.CartItem{
		{ProductID: "A", Quantity: 2, Inventory: 5},
		{ProductID: "B", Quantity: 1, Inventory: 3},
	}}
	ctrl, updates := newController(gw)

	require.NoError(t, ctrl.Remove(context.Background(), "A"))
	items, _ := ctrl.Get(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].ProductID)

	// Identité absente : panier inchangé
	require.NoError(t, ctrl.Remove(context.Background(), "Z"))
	items, _ = ctrl.Get(context.Background())
	assert.Len(t, items, 1)
	assert.Equal(t, 2, *updates)
}

func TestUpdateQuantity(t *testing.T) {
	gw := &mockGateway{items: []models.CartItem{
		{ProductID: "A", Quantity: 2, Inventory: 5},
	}}
	ctrl, updates := newController(gw)

	require.NoError(t, ctrl.UpdateQuantity(context.Background(), "A", 4))

	items, _ := ctrl.Get(context.Background())
	assert.Equal(t, 4, items[0].Quantity)
	// La mise à jour de quantité ne rediffuse pas cart-updated
	assert.Equal(t, 0, *updates)
}

func TestGetAfterWriteRoundTrip(t *testing.T) {
	gw := &mockGateway{}
	ctrl, _ := newController(gw)

	wanted := []models.CartItem{
		{ProductID: "A", Name: "Ring", Quantity: 1, Inventory: 2, Price: 45},
		{ProductID: "B", Name: "Necklace", Quantity: 2, Inventory: 9, Price: 80},
	}
	for _, item := range wanted {
		require.NoError(t, ctrl.Add(context.Background(), item))
	}

	items, err := ctrl.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wanted, items)
}

func TestMutationErrorsAreSurfaced(t *testing.T) {
	boom := errors.New("backend indisponible")

	gw := &mockGateway{getErr: boom}
	ctrl, updates := newController(gw)
	assert.ErrorIs(t, ctrl.Add(context.Background(), models.CartItem{ProductID: "A", Quantity: 1, Inventory: 1}), boom)

	gw = &mockGateway{putErr: boom}
	ctrl, updates = newController(gw)
	err := ctrl.Remove(context.Background(), "A")
	assert.ErrorIs(t, err, boom)
	// Pas de diffusion quand l'écriture a échoué
	assert.Equal(t, 0, *updates)
}
