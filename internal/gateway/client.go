package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// Nom du cookie anti-forgery posé par GET /csrf
const csrfCookieName = "csrftoken"

// ErrUnauthenticated : le backend a répondu 401 (session absente ou expirée)
var ErrUnauthenticated = errors.New("utilisateur non authentifié")

// Client : passerelle typée vers le backend REST. Une requête par opération,
// jamais de retry, jamais de cache. Le jar porte le cookie de session et le
// cookie csrftoken.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}
}

// csrfToken lit le jeton anti-forgery dans le jar. Vide si FetchCSRF n'a
// jamais été appelé — erreur d'appelant, pas gérée défensivement.
func (c *Client) csrfToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Toute requête mutante porte le jeton anti-forgery
	if method != http.MethodGet {
		req.Header.Set("X-CSRFToken", c.csrfToken())
	}
	return req, nil
}

// do exécute la requête et décode le corps JSON dans out (si non nil).
// Retourne la réponse pour que l'appelant décide quoi faire du statut.
func (c *Client) do(req *http.Request, out any) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return resp, fmt.Errorf("décodage réponse %s: %w", req.URL.Path, err)
		}
	}
	return resp, nil
}
