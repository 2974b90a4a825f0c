package bus

import (
	"sync"
	"time"
)

// Délai d'affichage par défaut quand l'événement n'en précise pas
const DefaultAlertTimeout = 2 * time.Second

// AlertPresenter matérialise la sémantique d'affichage des BottomAlert :
// une seule ligne visible à la fois, un second envoi pendant la fenêtre
// remplace le message et relance le minuteur, pas de file d'attente.
type AlertPresenter struct {
	mu       sync.Mutex
	timer    *time.Timer
	message  string
	visible  bool
	onChange func(message string, visible bool)

	unsubscribe func()
}

// NewAlertPresenter s'abonne au bus ; onChange (optionnel) est rappelé à
// chaque affichage et à chaque disparition.
func NewAlertPresenter(b *Bus, onChange func(message string, visible bool)) *AlertPresenter {
	p := &AlertPresenter{onChange: onChange}
	p.unsubscribe = b.SubscribeBottomAlert(p.Show)
	return p
}

func (p *AlertPresenter) Show(alert BottomAlert) {
	timeout := alert.Timeout
	if timeout <= 0 {
		timeout = DefaultAlertTimeout
	}

	p.mu.Lock()
	p.message = alert.Message
	p.visible = true
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(timeout, p.dismiss)
	notify := p.onChange
	message := p.message
	p.mu.Unlock()

	if notify != nil {
		notify(message, true)
	}
}

func (p *AlertPresenter) dismiss() {
	p.mu.Lock()
	p.visible = false
	notify := p.onChange
	message := p.message
	p.mu.Unlock()

	if notify != nil {
		notify(message, false)
	}
}

// Current retourne le message affiché et sa visibilité.
func (p *AlertPresenter) Current() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message, p.visible
}

// Close désabonne le presenter et arrête le minuteur en cours.
func (p *AlertPresenter) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.mu.Unlock()
}
