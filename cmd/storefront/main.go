package main

import (
	"context"
	"log"
	"os"

	"namas_storefront/internal/bus"
	"namas_storefront/internal/config"
	"namas_storefront/internal/gateway"
	"namas_storefront/internal/handlers"
	"namas_storefront/internal/payment"
	"namas_storefront/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	secret := os.Getenv("STRIPE_SECRET_KEY")
	stripe.Key = secret
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	client := gateway.NewClient(config.BackendURL())

	// Fait poser le cookie anti-forgery avant la première mutation
	client.FetchCSRF(context.Background())
	log.Println("✅ Passerelle backend prête sur", config.BackendURL())

	notifications := bus.New()
	app := handlers.NewApp(client, payment.NewStripe(), notifications, config.ReturnURL())

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(r, app)

	port := config.Port()
	log.Println("🚀 Session storefront lancée sur le port", port)
	r.Run(":" + port)
}
