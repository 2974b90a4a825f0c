// Package customize : composition d'un bracelet personnalisé, 12
// emplacements à remplir avant l'ajout au panier.
package customize

import (
	"errors"
	"fmt"

	"namas_storefront/internal/models"
)

const (
	SlotCount = 12
	// 12 perles à 10 USD
	BraceletPrice = 120

	CategoryCustomized = "customized_bracelet"
)

var ErrIncomplete = errors.New("le bracelet n'est pas complet")

type Bracelet struct {
	slots [SlotCount]*models.Bead
}

func NewBracelet() *Bracelet {
	return &Bracelet{}
}

func (b *Bracelet) SetBead(slot int, bead models.Bead) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("emplacement invalide: %d", slot)
	}
	copied := bead
	b.slots[slot] = &copied
	return nil
}

func (b *Bracelet) RemoveBead(slot int) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("emplacement invalide: %d", slot)
	}
	b.slots[slot] = nil
	return nil
}

// Completed : tous les emplacements portent une perle
func (b *Bracelet) Completed() bool {
	for _, bead := range b.slots {
		if bead == nil {
			return false
		}
	}
	return true
}

func (b *Bracelet) Slots() []models.BraceletSlot {
	slots := make([]models.BraceletSlot, SlotCount)
	for i, bead := range b.slots {
		slots[i] = models.BraceletSlot{Bead: bead}
	}
	return slots
}

// CartItem convertit le bracelet complet en ligne de panier synthétique.
// L'identité reste vide : le backend créera le produit à la réécriture du
// panier, et deux personnalisations ne fusionnent jamais.
func (b *Bracelet) CartItem() (models.CartItem, error) {
	if !b.Completed() {
		return models.CartItem{}, ErrIncomplete
	}

	beads := make([]models.Bead, SlotCount)
	for i, bead := range b.slots {
		beads[i] = *bead
	}

	return models.CartItem{
		ProductID: "",
		Name:      "Customized Bracelet",
		Quantity:  1,
		Inventory: 1,
		Price:     BraceletPrice,
		Category:  CategoryCustomized,
		Beads:     beads,
	}, nil
}

// BeadsFromProducts projette les produits de type perle vers le sélecteur.
func BeadsFromProducts(products []models.Product) []models.Bead {
	beads := make([]models.Bead, 0, len(products))
	for _, p := range products {
		imgPath := ""
		if len(p.Images) > 0 {
			imgPath = p.Images[0]
		}
		beads = append(beads, models.Bead{
			BeadID:  p.ProductID,
			Name:    p.Name,
			ImgPath: imgPath,
		})
	}
	return beads
}
