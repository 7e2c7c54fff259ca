package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StoreDriver:    "sqlite",
		SQLitePath:     filepath.Join(t.TempDir(), "quickcut.db"),
		StoreKeyPrefix: "quickcut-",
		JWTSecret:      "test",
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
		Timezone:       "Africa/Addis_Ababa",
		SeedSampleData: true,
	}
}

func TestBootstrapSeedsAndPersists(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	ctx := context.Background()

	app, err := Bootstrap(ctx, cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	aps, _ := app.Repo.ListAppointments(ctx)
	if len(aps) != 3 {
		t.Fatalf("expected 3 sample appointments, got %d", len(aps))
	}

	w := httptest.NewRecorder()
	NewRouter(app).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/barbers", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	app.Close()

	// A second start sees the same data and does not reseed.
	again, err := Bootstrap(ctx, cfg)
	if err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	defer again.Close()

	aps, _ = again.Repo.ListAppointments(ctx)
	if len(aps) != 3 {
		t.Fatalf("expected data to persist, got %d appointments", len(aps))
	}
	if _, err := again.Auth.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("login after restart: %v", err)
	}
}
