// Package cart : contrôleur de synchronisation du panier. Le panier fait
// autorité côté backend ; chaque mutation est un cycle lecture complète,
// modification en mémoire, réécriture complète. Pas de verrou : deux
// mutations concurrentes de la même session se résolvent en dernier-écrit-
// gagne, acceptable en mono-utilisateur mono-onglet.
package cart

import (
	"context"

	"namas_storefront/internal/bus"
	"namas_storefront/internal/models"
)

// Gateway : opérations panier consommées par le contrôleur
type Gateway interface {
	GetCart(ctx context.Context) ([]models.CartItem, error)
	ReplaceCart(ctx context.Context, items []models.CartItem) ([]string, error)
}

type Controller struct {
	gateway Gateway
	bus     *bus.Bus
}

func NewController(gateway Gateway, b *bus.Bus) *Controller {
	return &Controller{gateway: gateway, bus: b}
}

// Get relit toujours le panier depuis le backend, aucune copie locale.
func (c *Controller) Get(ctx context.Context) ([]models.CartItem, error) {
	return c.gateway.GetCart(ctx)
}

// Add fusionne l'article avec une ligne existante de même identité en
// écrêtant silencieusement au stock disponible, sinon l'ajoute en fin de
// panier. Les identités vides (bracelets personnalisés) ne fusionnent
// jamais : chaque personnalisation est une ligne à part.
func (c *Controller) Add(ctx context.Context, item models.CartItem) error {
	items, err := c.gateway.GetCart(ctx)
	if err != nil {
		return err
	}

	merged := false
	if item.ProductID != "" {
		for i := range items {
			if items[i].ProductID == item.ProductID {
				quantity := items[i].Quantity + item.Quantity
				if quantity > items[i].Inventory {
					quantity = items[i].Inventory
				}
				items[i].Quantity = quantity
				merged = true
				break
			}
		}
	}
	if !merged {
		items = append(items, item)
	}

	if _, err := c.gateway.ReplaceCart(ctx, items); err != nil {
		return err
	}
	c.bus.PublishCartUpdated()
	return nil
}

// UpdateQuantity remplace la quantité d'une ligne. Le respect de
// 1 ≤ quantity ≤ inventory appartient à l'appelant, la zone de saisie ne
// propose que des valeurs valides.
func (c *Controller) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	items, err := c.gateway.GetCart(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}

	_, err = c.gateway.ReplaceCart(ctx, items)
	return err
}

// Remove retire la ligne correspondante ; idempotent si elle est absente.
func (c *Controller) Remove(ctx context.Context, productID string) error {
	items, err := c.gateway.GetCart(ctx)
	if err != nil {
		return err
	}

	kept := []models.CartItem{}
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if _, err := c.gateway.ReplaceCart(ctx, kept); err != nil {
		return err
	}
	c.bus.PublishCartUpdated()
	return nil
}
