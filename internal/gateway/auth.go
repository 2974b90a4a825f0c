package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"namas_storefront/internal/models"
)

// FetchCSRF fait poser le cookie anti-forgery par le backend.
// Fire-and-forget : l'échec est journalisé, jamais remonté à l'UI.
func (c *Client) FetchCSRF(ctx context.Context) {
	req, err := c.newRequest(ctx, http.MethodGet, "/csrf", nil)
	if err != nil {
		log.Println("❌ Échec récupération jeton CSRF:", err)
		return
	}
	if _, err := c.do(req, nil); err != nil {
		log.Println("❌ Échec récupération jeton CSRF:", err)
	}
}

// CurrentUser retourne l'utilisateur courant, ou nil (jamais une erreur)
// quand la session est absente ou la requête échoue.
func (c *Client) CurrentUser(ctx context.Context) *models.User {
	req, err := c.newRequest(ctx, http.MethodGet, "/account/user", nil)
	if err != nil {
		return nil
	}

	var body models.UserResponse
	resp, err := c.do(req, &body)
	if err != nil {
		log.Println("❌ Échec récupération utilisateur:", err)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	return body.User
}

// Login authentifie l'utilisateur. La réponse structurée distingue les
// erreurs par champ de l'erreur globale ; une panne réseau est repliée en
// réponse échouée synthétique.
func (c *Client) Login(ctx context.Context, credentials models.Login) models.AuthResponse {
	return c.postAuth(ctx, "/account/login", credentials,
		"Login failed. Please try again.")
}

// Register enregistre un nouvel utilisateur, mêmes conventions que Login.
func (c *Client) Register(ctx context.Context, registration models.Registration) models.AuthResponse {
	return c.postAuth(ctx, "/account/register", registration,
		"Registration failed. Please try again.")
}

func (c *Client) postAuth(ctx context.Context, path string, payload any, fallback string) models.AuthResponse {
	req, err := c.newRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return models.AuthResponse{Success: false, Message: fallback}
	}

	var body models.AuthResponse
	if _, err := c.do(req, &body); err != nil {
		log.Printf("❌ Échec requête %s: %v", path, err)
		return models.AuthResponse{Success: false, Message: fallback}
	}
	return body
}

// Logout ferme la session côté backend.
func (c *Client) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/account/logout", nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("échec déconnexion: %s", resp.Status)
	}
	return nil
}

// OAuthLoginURL : URL backend vers laquelle rediriger pour le flux OAuth.
// Aucune requête n'est émise ici, la navigation appartient à l'UI.
func (c *Client) OAuthLoginURL(provider string) string {
	return c.baseURL + "/oauth/login/" + provider + "/"
}
