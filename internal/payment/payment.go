// Package payment : frontière avec le processeur de paiement. Le système
// ne voit jamais les données de carte, il déclenche la confirmation et
// relit l'état de l'intent, rien d'autre.
package payment

import "context"

// Status : états observables d'un PaymentIntent
type Status string

const (
	StatusRequiresPaymentMethod Status = "requires_payment_method"
	StatusProcessing            Status = "processing"
	StatusSucceeded             Status = "succeeded"
	StatusFailed                Status = "failed"
)

// Collaborator : surface opaque du processeur de paiement, identifiée par
// le client secret de l'intent.
type Collaborator interface {
	// Confirm déclenche la confirmation du paiement ; returnURL sert aux
	// méthodes à redirection hors-bande.
	Confirm(ctx context.Context, clientSecret, returnURL string) (Status, error)
	// Retrieve relit l'état courant de l'intent.
	Retrieve(ctx context.Context, clientSecret string) (Status, error)
}

// ConfirmError : échec de confirmation. Les erreurs carte/validation se
// montrent en ligne sur le formulaire et autorisent une nouvelle
// soumission manuelle.
type ConfirmError struct {
	Type    string
	Message string
}

func (e *ConfirmError) Error() string {
	return e.Message
}

// Inline : l'erreur s'affiche sur le formulaire de paiement
func (e *ConfirmError) Inline() bool {
	return e.Type == "card_error" || e.Type == "validation_error"
}
