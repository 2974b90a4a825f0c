package handlers

import (
	"log"
	"net/http"

	"namas_storefront/internal/bus"
	"namas_storefront/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// NotificationsWebSocket relaie le bus vers le navigateur : signal de
// panier, alertes transitoires et ouverture du dialogue de connexion.
// Chaque région d'UI abonnée relit le panier elle-même, l'événement ne
// transporte pas de données.
func (a *App) NotificationsWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	// Les callbacks du bus arrivent sur la goroutine du publieur, la
	// connexion n'accepte qu'un écrivain : on sérialise par un canal.
	send := make(chan map[string]interface{}, 16)
	push := func(msg map[string]interface{}) {
		select {
		case send <- msg:
		default:
			// Abonné trop lent : l'événement est perdu, sémantique
			// fire-and-forget du bus
		}
	}

	unsubCart := a.Bus.SubscribeCartUpdated(func(bus.CartUpdated) {
		items, err := a.Cart.Get(c.Request.Context())
		if err != nil {
			push(map[string]interface{}{
				"type":  "cart_updated",
				"items": []models.CartItem{},
				"total": 0,
				"count": 0,
			})
			return
		}
		push(map[string]interface{}{
			"type":  "cart_updated",
			"items": items,
			"total": models.CartTotal(items),
			"count": len(items),
		})
	})
	defer unsubCart()

	unsubAlert := a.Bus.SubscribeBottomAlert(func(alert bus.BottomAlert) {
		push(map[string]interface{}{
			"type":       "bottom_alert",
			"message":    alert.Message,
			"timeout_ms": alert.Timeout.Milliseconds(),
		})
	})
	defer unsubAlert()

	unsubAuth := a.Bus.SubscribeAuthDialog(func(bus.AuthDialog) {
		push(map[string]interface{}{"type": "show_auth_dialog"})
	})
	defer unsubAuth()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation notifications activée",
	})

	// Détection de fermeture côté client
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-send:
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
