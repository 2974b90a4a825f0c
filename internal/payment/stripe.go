package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// ErrBadClientSecret : le client secret ne porte pas d'identifiant d'intent
var ErrBadClientSecret = errors.New("client secret invalide")

// StripeCollaborator implémente Collaborator avec le SDK Stripe.
// Suppose stripe.Key initialisée au démarrage.
type StripeCollaborator struct{}

func NewStripe() *StripeCollaborator {
	return &StripeCollaborator{}
}

// intentID extrait l'identifiant depuis un client secret pi_xxx_secret_yyy
func intentID(clientSecret string) (string, error) {
	idx := strings.Index(clientSecret, "_secret")
	if idx <= 0 {
		return "", ErrBadClientSecret
	}
	return clientSecret[:idx], nil
}

func (s *StripeCollaborator) Confirm(ctx context.Context, clientSecret, returnURL string) (Status, error) {
	id, err := intentID(clientSecret)
	if err != nil {
		return StatusFailed, err
	}

	params := &stripe.PaymentIntentConfirmParams{
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	intent, err := paymentintent.Confirm(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			log.Printf("❌ Confirmation Stripe refusée (%s): %s", stripeErr.Type, stripeErr.Msg)
			return StatusFailed, &ConfirmError{
				Type:    string(stripeErr.Type),
				Message: stripeErr.Msg,
			}
		}
		return StatusFailed, fmt.Errorf("confirmation du paiement: %w", err)
	}

	log.Printf("💳 PaymentIntent confirmé : %s (%s)", intent.ID, intent.Status)
	return Status(intent.Status), nil
}

func (s *StripeCollaborator) Retrieve(ctx context.Context, clientSecret string) (Status, error) {
	id, err := intentID(clientSecret)
	if err != nil {
		return StatusFailed, err
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(id, params)
	if err != nil {
		return StatusFailed, fmt.Errorf("lecture du PaymentIntent: %w", err)
	}
	return Status(intent.Status), nil
}
