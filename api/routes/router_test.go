package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yourarttoy/arttoy-backend/api/controllers"
	"github.com/yourarttoy/arttoy-backend/internal/arttoys"
	"github.com/yourarttoy/arttoy-backend/internal/orders"
	pkgAuth "github.com/yourarttoy/arttoy-backend/pkg/auth"
	"github.com/yourarttoy/arttoy-backend/pkg/config"
	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	"github.com/yourarttoy/arttoy-backend/pkg/enums"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/metrics"
	"github.com/yourarttoy/arttoy-backend/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubArtToyService struct{}

func (stubArtToyService) ListArtToys(context.Context, arttoys.ListInput) (*arttoys.ListResult, error) {
	return &arttoys.ListResult{Toys: []arttoys.ArtToyDTO{}, Page: 1, TotalPages: 0}, nil
}

func (stubArtToyService) GetArtToy(context.Context, uuid.UUID) (*arttoys.ArtToyDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Art Toy not found")
}

func (stubArtToyService) SearchByTags(context.Context, []string) ([]arttoys.ArtToyDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please provide tags to search for")
}

func (stubArtToyService) CreateArtToy(context.Context, arttoys.CreateArtToyInput) (*arttoys.ArtToyDTO, error) {
	return &arttoys.ArtToyDTO{ID: uuid.New()}, nil
}

func (stubArtToyService) UpdateArtToy(context.Context, uuid.UUID, arttoys.UpdateArtToyInput) (*arttoys.ArtToyDTO, error) {
	return &arttoys.ArtToyDTO{}, nil
}

func (stubArtToyService) DeleteArtToy(context.Context, uuid.UUID) error { return nil }

type stubOrderService struct{}

func (stubOrderService) ListOrders(context.Context, pkgAuth.Principal) ([]orders.OrderDTO, error) {
	return []orders.OrderDTO{}, nil
}

func (stubOrderService) GetOrder(context.Context, pkgAuth.Principal, uuid.UUID) (*orders.OrderDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
}

func (stubOrderService) CreateOrder(context.Context, pkgAuth.Principal, orders.CreateOrderInput) (*orders.OrderDTO, error) {
	return &orders.OrderDTO{ID: uuid.New()}, nil
}

func (stubOrderService) UpdateOrder(context.Context, pkgAuth.Principal, uuid.UUID, orders.UpdateOrderInput) (*orders.OrderDTO, error) {
	return &orders.OrderDTO{}, nil
}

func (stubOrderService) DeleteOrder(context.Context, pkgAuth.Principal, uuid.UUID) error {
	return nil
}

type stubUserLoader struct {
	users map[uuid.UUID]*models.User
}

func (s stubUserLoader) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authorized to access this route")
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "arttoy-test",
			ExpirationMinutes: 60,
		},
		RateLimit: config.RateLimitConfig{Disabled: true},
	}
}

func newTestRouter(t *testing.T, loader stubUserLoader) http.Handler {
	t.Helper()

	registry := prometheus.NewRegistry()
	return NewRouter(Params{
		Config:   testConfig(),
		Logger:   nil,
		Users:    loader,
		ArtToys:  stubArtToyService{},
		Orders:   stubOrderService{},
		Metrics:  metrics.NewHTTPMetrics(registry),
		Registry: registry,
		Pingers: map[string]controllers.Pinger{
			"database": stubPinger{},
			"redis":    stubPinger{},
		},
	})
}

func mintToken(t *testing.T, role enums.UserRole, loader stubUserLoader) string {
	t.Helper()

	id := uuid.New()
	loader.users[id] = &models.User{ID: id, Role: role}
	token, err := pkgAuth.MintAccessToken(testConfig().JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: id,
		Role:   role,
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestPublicCatalogRoutes(t *testing.T) {
	router := newTestRouter(t, stubUserLoader{users: map[uuid.UUID]*models.User{}})

	t.Run("listIsPublic", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/arttoys", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body types.ListEnvelope
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.Success {
			t.Fatal("expected success envelope")
		}
	})

	t.Run("missingToyIs404", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/arttoys/"+uuid.NewString(), nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("tagSearchWithoutTagsIs400", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/arttoys/search", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminCatalogGates(t *testing.T) {
	loader := stubUserLoader{users: map[uuid.UUID]*models.User{}}
	router := newTestRouter(t, loader)
	body := `{"sku":"SKU-1","name":"Labubu","description":"forest","price":29.9,"arrivalDate":"2099-01-01","availableQuota":10,"posterPicture":"https://cdn.example.com/p.png"}`

	t.Run("anonymous401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/arttoys", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("member403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/arttoys", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleMember, loader))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin201", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/arttoys", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleAdmin, loader))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrdersRequireAuth(t *testing.T) {
	loader := stubUserLoader{users: map[uuid.UUID]*models.User{}}
	router := newTestRouter(t, loader)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleMember, loader))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderCreateIsMemberOnly(t *testing.T) {
	loader := stubUserLoader{users: map[uuid.UUID]*models.User{}}
	router := newTestRouter(t, loader)
	body := `{"artToy":"` + uuid.NewString() + `","orderAmount":2}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleAdmin, loader))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, enums.UserRoleMember, loader))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for member, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t, stubUserLoader{users: map[uuid.UUID]*models.User{}})

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}
