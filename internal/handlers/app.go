package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"namas_storefront/internal/bus"
	"namas_storefront/internal/cart"
	"namas_storefront/internal/checkout"
	"namas_storefront/internal/gateway"
	"namas_storefront/internal/payment"
)

// App : surface HTTP de la session storefront. Un processus = une session
// (un jar de cookies, un panier), le modèle mono-utilisateur mono-onglet.
type App struct {
	Gateway  *gateway.Client
	Cart     *cart.Controller
	Payments payment.Collaborator
	Bus      *bus.Bus
	Alerts   *bus.AlertPresenter

	ReturnURL string

	// flux de checkout en cours, recréé à chaque visite de la page.
	// Lu et écrit par des requêtes distinctes, d'où le verrou.
	mu       sync.Mutex
	checkout *checkout.Orchestrator
}

func (a *App) setCheckoutFlow(flow *checkout.Orchestrator) {
	a.mu.Lock()
	a.checkout = flow
	a.mu.Unlock()
}

func (a *App) checkoutFlow() *checkout.Orchestrator {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checkout
}

func NewApp(client *gateway.Client, payments payment.Collaborator, b *bus.Bus, returnURL string) *App {
	return &App{
		Gateway:   client,
		Cart:      cart.NewController(client, b),
		Payments:  payments,
		Bus:       b,
		Alerts:    bus.NewAlertPresenter(b, nil),
		ReturnURL: returnURL,
	}
}

// alert publie une notification transitoire d'une ligne
func (a *App) alert(message string) {
	a.Bus.PublishBottomAlert(bus.BottomAlert{Message: message, Timeout: 2 * time.Second})
}

//
// 🔔 GET /api/alert — état courant de la notification transitoire
//
func (a *App) CurrentAlert(c *gin.Context) {
	message, visible := a.Alerts.Current()
	c.JSON(http.StatusOK, gin.H{"message": message, "visible": visible})
}
