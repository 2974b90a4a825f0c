package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"namas_storefront/internal/bus"
	"namas_storefront/internal/gateway"
	"namas_storefront/internal/handlers"
	"namas_storefront/internal/models"
	"namas_storefront/internal/payment"
	"namas_storefront/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCollaborator struct {
	confirmCalls  int
	retrieveCalls int
	status        payment.Status
}

func (s *stubCollaborator) Confirm(context.Context, string, string) (payment.Status, error) {
	s.confirmCalls++
	return s.status, nil
}

func (s *stubCollaborator) Retrieve(context.Context, string) (payment.Status, error) {
	s.retrieveCalls++
	return s.status, nil
}

// testApp monte la surface gin complète devant un faux backend REST.
func testApp(t *testing.T, backend *http.ServeMux) (*gin.Engine, *handlers.App, *stubCollaborator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	b := bus.New()
	collab := &stubCollaborator{status: payment.StatusSucceeded}
	app := handlers.NewApp(gateway.NewClient(server.URL), collab, b, "http://localhost:5173/complete")

	r := gin.New()
	routes.RegisterRoutes(r, app)
	return r, app, collab
}

func emptyCartBackend(createCalls *int) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.CartResponse{Success: true, CartItems: []models.CartItem{}})
	})
	mux.HandleFunc("POST /checkout/create-payment", func(w http.ResponseWriter, r *http.Request) {
		if createCalls != nil {
			*createCalls++
		}
		json.NewEncoder(w).Encode(map[string]string{"clientSecret": "pi_1_secret_abc"})
	})
	return mux
}

func TestCheckoutEmptyCartNeverCreatesPayment(t *testing.T) {
	createCalls := 0
	r, _, _ := testApp(t, emptyCartBackend(&createCalls))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkout", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		CartEmpty bool `json:"cartEmpty"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.CartEmpty)

	// Une adresse complète sur panier vide ne crée toujours pas d'intent
	address := `{"address":{"firstName":"Ada","lastName":"Lovelace","streetAddress":"12 Jade Street","city":"Portland","state":"OR","postalCode":"97201","country":"US"}}`
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/address", strings.NewReader(address))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var addrBody struct {
		CartEmpty bool   `json:"cartEmpty"`
		State     string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addrBody))
	assert.True(t, addrBody.CartEmpty)
	assert.Equal(t, "collecting_address", addrBody.State)
	assert.Equal(t, 0, createCalls)
}

func TestCompletePageWithoutClientSecret(t *testing.T) {
	r, _, collab := testApp(t, emptyCartBackend(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkout/complete", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Result  string `json:"result"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "none", body.Result)
	assert.Equal(t, "No Payment Intent found.", body.Message)
	assert.Equal(t, 0, collab.retrieveCalls)
}

func TestCartFetchUnauthorizedOpensAuthDialog(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.CartResponse{Success: false})
	})

	r, app, _ := testApp(t, mux)

	authPrompts := 0
	app.Bus.SubscribeAuthDialog(func(bus.AuthDialog) { authPrompts++ })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// 401 ouvre la connexion au lieu d'une alerte générique
	assert.Equal(t, 1, authPrompts)
}

func TestCartFetchOutageShowsAlertNotAuthDialog(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(models.CartResponse{Success: false})
	})

	r, app, _ := testApp(t, mux)

	authPrompts, alerts := 0, 0
	app.Bus.SubscribeAuthDialog(func(bus.AuthDialog) { authPrompts++ })
	app.Bus.SubscribeBottomAlert(func(bus.BottomAlert) { alerts++ })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, 0, authPrompts)
	assert.Equal(t, 1, alerts)
}

func TestRemoveCustomBraceletByEmptyIdentity(t *testing.T) {
	var written []models.CartItem
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.CartResponse{Success: true, CartItems: []models.CartItem{
			{ProductID: "p1", Name: "Jade Bracelet", Quantity: 1, Inventory: 5, Price: 80},
			{Name: "Customized Bracelet", Quantity: 1, Inventory: 1, Price: 120, Category: "customized_bracelet"},
		}})
	})
	mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CartItems []models.CartItem `json:"cart_items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		written = body.CartItems
		json.NewEncoder(w).Encode(models.CartResponse{Success: true})
	})

	r, _, _ := testApp(t, mux)

	// La ligne personnalisée n'a pas de product_id, /cart/:productId ne
	// peut pas la désigner : elle part par l'identité vide
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/customize", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, written, 1)
	assert.Equal(t, "p1", written[0].ProductID)
}

func TestCheckoutStepsBeforeBeginConflict(t *testing.T) {
	r, _, _ := testApp(t, emptyCartBackend(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/address",
		strings.NewReader(`{"address":null}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/checkout/submit", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCustomizeRejectsPartialBracelet(t *testing.T) {
	r, _, _ := testApp(t, emptyCartBackend(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customize",
		strings.NewReader(`{"beads":[{"bead_id":"b1","name":"Jade","imgPath":"/jade.png"}]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
