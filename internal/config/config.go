package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Getenv retourne la variable d'environnement ou la valeur par défaut
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BackendURL : origine du backend REST (catalogue, panier, comptes, commandes)
func BackendURL() string {
	return Getenv("BACKEND_URL", "http://localhost:8000")
}

// ReturnURL : URL de retour après confirmation du paiement (méthodes à redirection)
func ReturnURL() string {
	return Getenv("RETURN_URL", "http://localhost:5173/complete")
}

// FrontendOrigin : origine autorisée pour le CORS
func FrontendOrigin() string {
	return Getenv("FRONTEND_ORIGIN", "http://localhost:5173")
}

func Port() string {
	return Getenv("PORT", "8080")
}
