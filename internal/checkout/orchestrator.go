// Package checkout : orchestration du passage en caisse. Capture de
// l'adresse, création du PaymentIntent, confirmation hébergée, puis page
// de complétion atteinte en ligne ou par redirection.
package checkout

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"namas_storefront/internal/bus"
	"namas_storefront/internal/models"
	"namas_storefront/internal/payment"
)

type State string

const (
	StateCollectingAddress State = "collecting_address"
	StateCreatingIntent    State = "creating_intent"
	StateAwaitingPayment   State = "awaiting_payment"
	StateConfirming        State = "confirming"
	StateComplete          State = "complete"
	StateFailed            State = "failed"
)

var (
	// ErrCartEmpty : le flux ne démarre pas sans article
	ErrCartEmpty = errors.New("Your cart is empty!")
	// ErrNoAddress : soumission sans adresse complète
	ErrNoAddress = errors.New("Shipping address is required.")
	// ErrNotPayable : soumission hors de l'état awaiting_payment
	ErrNotPayable = errors.New("aucun paiement en attente")
)

// Gateway : opérations backend consommées par l'orchestrateur
type Gateway interface {
	GetCart(ctx context.Context) ([]models.CartItem, error)
	CreatePayment(ctx context.Context, items []models.CartItem, address *models.ShippingAddress) (string, error)
	Checkout(ctx context.Context, address *models.ShippingAddress) (*models.Order, error)
}

type Orchestrator struct {
	gateway   Gateway
	payments  payment.Collaborator
	bus       *bus.Bus
	returnURL string

	mu           sync.Mutex
	state        State
	items        []models.CartItem
	address      *models.ShippingAddress
	clientSecret string
	order        *models.Order
}

func NewOrchestrator(gateway Gateway, payments payment.Collaborator, b *bus.Bus, returnURL string) *Orchestrator {
	return &Orchestrator{
		gateway:   gateway,
		payments:  payments,
		bus:       b,
		returnURL: returnURL,
		state:     StateCollectingAddress,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Items() []models.CartItem {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.items
}

func (o *Orchestrator) ClientSecret() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.clientSecret
}

func (o *Orchestrator) Order() *models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.order
}

// Load prend l'instantané du panier. Un panier vide arrête le flux avant
// toute création d'intent.
func (o *Orchestrator) Load(ctx context.Context) error {
	items, err := o.gateway.GetCart(ctx)
	if err != nil {
		return err
	}

	o.mu.Lock()
	o.items = items
	o.mu.Unlock()

	if len(items) == 0 {
		return ErrCartEmpty
	}
	return nil
}

// SetAddress reçoit l'état du widget d'adresse. Nil ou incomplète : on
// reste en saisie, sans invalider un intent déjà créé (risque d'intent
// périmé assumé). Complète avec panier non vide : création de l'intent
// puis passage en attente de paiement.
func (o *Orchestrator) SetAddress(ctx context.Context, address *models.ShippingAddress) error {
	if !address.Complete() {
		o.mu.Lock()
		o.address = nil
		o.mu.Unlock()
		return nil
	}

	o.mu.Lock()
	o.address = address
	items := o.items
	o.mu.Unlock()

	if len(items) == 0 {
		return ErrCartEmpty
	}

	o.setState(StateCreatingIntent)
	clientSecret, err := o.gateway.CreatePayment(ctx, items, address)
	if err != nil {
		// Jamais de retry silencieux : retour à la saisie, erreur affichée
		o.setState(StateCollectingAddress)
		o.bus.PublishBottomAlert(bus.BottomAlert{
			Message: "Error Checking Out! Please try again later.",
			Timeout: 2 * time.Second,
		})
		return err
	}

	o.mu.Lock()
	o.clientSecret = clientSecret
	o.state = StateAwaitingPayment
	o.mu.Unlock()
	return nil
}

// Submit finalise la commande puis demande la confirmation du paiement.
// La commande est créée d'abord pour exister même si la confirmation est
// interrompue ; son échec est journalisé sans bloquer la confirmation.
func (o *Orchestrator) Submit(ctx context.Context) (payment.Status, error) {
	o.mu.Lock()
	if o.state != StateAwaitingPayment || o.clientSecret == "" {
		o.mu.Unlock()
		return "", ErrNotPayable
	}
	if o.address == nil {
		o.mu.Unlock()
		return "", ErrNoAddress
	}
	address := o.address
	clientSecret := o.clientSecret
	o.state = StateConfirming
	o.mu.Unlock()

	order, err := o.gateway.Checkout(ctx, address)
	if err != nil {
		log.Println("❌ Échec finalisation commande:", err)
	} else {
		o.mu.Lock()
		o.order = order
		o.mu.Unlock()
	}

	status, err := o.payments.Confirm(ctx, clientSecret, o.returnURL)
	if err != nil {
		var confirmErr *payment.ConfirmError
		if errors.As(err, &confirmErr) && confirmErr.Inline() {
			// Erreur carte ou validation : message en ligne, resoumission
			// manuelle possible
			o.setState(StateAwaitingPayment)
			return status, err
		}
		o.setState(StateFailed)
		return status, err
	}

	o.setState(StateComplete)
	o.bus.PublishCartUpdated()
	return status, nil
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
