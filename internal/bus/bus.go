// Package bus : pub/sub typé interne au processus, injecté partout où
// l'ancien code s'appuyait sur des événements globaux ambiants.
// Livraison synchrone sur la goroutine du publieur, dans l'ordre
// d'abonnement, sans tampon : publier sans abonné ne fait rien.
package bus

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CartUpdated : signal de recontrôle, sans charge utile. Chaque abonné
// relit le panier lui-même.
type CartUpdated struct{}

// BottomAlert : notification transitoire d'une ligne. Un second envoi
// pendant l'affichage remplace le message et relance le minuteur.
type BottomAlert struct {
	Message string
	Timeout time.Duration
}

// AuthDialog : ouvre le dialogue de connexion, idempotent s'il est déjà ouvert.
type AuthDialog struct{}

type cartUpdatedSub struct {
	id uuid.UUID
	fn func(CartUpdated)
}

type bottomAlertSub struct {
	id uuid.UUID
	fn func(BottomAlert)
}

type authDialogSub struct {
	id uuid.UUID
	fn func(AuthDialog)
}

type Bus struct {
	mu          sync.Mutex
	cartUpdated []cartUpdatedSub
	bottomAlert []bottomAlertSub
	authDialog  []authDialogSub
}

func New() *Bus {
	return &Bus{}
}

// SubscribeCartUpdated enregistre un abonné ; la fonction retournée le
// désabonne (à appeler au démontage).
func (b *Bus) SubscribeCartUpdated(fn func(CartUpdated)) func() {
	id := uuid.New()
	b.mu.Lock()
	b.cartUpdated = append(b.cartUpdated, cartUpdatedSub{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.cartUpdated {
			if sub.id == id {
				b.cartUpdated = append(b.cartUpdated[:i], b.cartUpdated[i+1:]...)
				return
			}
		}
	}
}

func (b *Bus) SubscribeBottomAlert(fn func(BottomAlert)) func() {
	id := uuid.New()
	b.mu.Lock()
	b.bottomAlert = append(b.bottomAlert, bottomAlertSub{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.bottomAlert {
			if sub.id == id {
				b.bottomAlert = append(b.bottomAlert[:i], b.bottomAlert[i+1:]...)
				return
			}
		}
	}
}

func (b *Bus) SubscribeAuthDialog(fn func(AuthDialog)) func() {
	id := uuid.New()
	b.mu.Lock()
	b.authDialog = append(b.authDialog, authDialogSub{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.authDialog {
			if sub.id == id {
				b.authDialog = append(b.authDialog[:i], b.authDialog[i+1:]...)
				return
			}
		}
	}
}

func (b *Bus) PublishCartUpdated() {
	b.mu.Lock()
	subs := make([]cartUpdatedSub, len(b.cartUpdated))
	copy(subs, b.cartUpdated)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.fn(CartUpdated{})
	}
}

func (b *Bus) PublishBottomAlert(alert BottomAlert) {
	b.mu.Lock()
	subs := make([]bottomAlertSub, len(b.bottomAlert))
	copy(subs, b.bottomAlert)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.fn(alert)
	}
}

func (b *Bus) PublishAuthDialog() {
	b.mu.Lock()
	subs := make([]authDialogSub, len(b.authDialog))
	copy(subs, b.authDialog)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.fn(AuthDialog{})
	}
}
