package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopstock/internal/ledger"
	"shopstock/internal/metrics"
	"shopstock/internal/middleware"
	"shopstock/internal/service"
	"shopstock/internal/storage"
	"shopstock/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// testAPI is the full HTTP surface over seeded in-memory stores.
type testAPI struct {
	router   chi.Router
	products *store.ProductStore
	sales    *store.SaleStore
	orders   *store.OrderStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctx := context.Background()
	st := storage.NewMemoryStore()
	logger := zap.NewNop()

	products, err := store.NewProductStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create product store: %v", err)
	}
	providers, err := store.NewProviderStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create provider store: %v", err)
	}
	users, err := store.NewUserStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create user store: %v", err)
	}
	orders, err := store.NewOrderStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create order store: %v", err)
	}
	sales, err := store.NewSaleStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create sale store: %v", err)
	}

	stock := ledger.New(products, logger)
	authService := service.NewAuthService(users, "test-secret", time.Hour)
	orderService := service.NewOrderService(orders, products, providers, stock)
	saleService := service.NewSaleService(sales, products, stock)
	engine := metrics.NewEngine(products, providers, orders, sales)

	router := chi.NewRouter()
	authMiddleware := middleware.AuthMiddleware(authService, logger)

	NewAuthHandler(authService, logger).RegisterRoutes(router)
	NewProductHandler(products, logger).RegisterRoutes(router, authMiddleware)
	NewProviderHandler(providers, logger).RegisterRoutes(router, authMiddleware)
	NewUserHandler(users, logger).RegisterRoutes(router, authMiddleware)
	NewOrderHandler(orders, orderService, logger).RegisterRoutes(router, authMiddleware)
	NewSaleHandler(sales, saleService, logger).RegisterRoutes(router, authMiddleware)
	NewDashboardHandler(engine, logger).RegisterRoutes(router, authMiddleware)

	return &testAPI{router: router, products: products, sales: sales, orders: orders}
}

// login returns a session token for the given seed account.
func (a *testAPI) login(t *testing.T, email string) string {
	t.Helper()

	w := a.request(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Login as %s failed with status %d: %s", email, w.Code, w.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse login response: %v", err)
	}
	return resp.Token
}

func (a *testAPI) adminToken(t *testing.T) string {
	return a.login(t, "admin@example.com")
}

func (a *testAPI) employeeToken(t *testing.T) string {
	return a.login(t, "employee@example.com")
}

func (a *testAPI) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}
