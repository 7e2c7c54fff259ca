package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	"github.com/BruksfildServices01/quickcut/internal/auth"
	"github.com/BruksfildServices01/quickcut/internal/infra/kvstore/memory"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
)

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.New(memory.New(), repository.Options{Prefix: "quickcut-"})
	authSvc := auth.NewService(repo, auth.Options{Secret: "test", Cost: bcrypt.MinCost})
	if _, err := authSvc.EnsureCredentials(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("seed credentials: %v", err)
	}
	dispatcher := audit.NewDispatcher(audit.New(repo))
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	RegisterRoutes(r, Deps{Repo: repo, Auth: authSvc, Audit: dispatcher})

	return &testServer{t: t, engine: r}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) expect(w *httptest.ResponseRecorder, status int) {
	s.t.Helper()
	if w.Code != status {
		s.t.Fatalf("expected %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func (s *testServer) login() {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"})
	s.expect(w, http.StatusOK)
	s.token = decode[struct {
		Token string `json:"token"`
	}](s.t, w).Token
}

// seedCatalog creates one barber and one service through the admin API.
func (s *testServer) seedCatalog() {
	s.t.Helper()
	s.expect(s.do(http.MethodPost, "/api/admin/barbers", map[string]any{
		"first_name": "John", "last_name": "Master", "specialty": "Fades",
	}), http.StatusCreated)
	s.expect(s.do(http.MethodPost, "/api/admin/services", map[string]any{
		"name": "Classic Haircut", "duration": 30, "price": 250,
	}), http.StatusCreated)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)
	s.expect(s.do(http.MethodGet, "/health", nil), http.StatusOK)
	s.expect(s.do(http.MethodGet, "/metrics", nil), http.StatusOK)
}

func TestAdminRequiresSession(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/admin/dashboard", nil)
	s.expect(w, http.StatusUnauthorized)
	if got := decode[map[string]string](t, w)["error_code"]; got != "missing_authorization_header" {
		t.Fatalf("unexpected error code %q", got)
	}

	s.expect(s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "wrong"}), http.StatusUnauthorized)

	s.login()
	s.expect(s.do(http.MethodGet, "/api/admin/dashboard", nil), http.StatusOK)

	s.expect(s.do(http.MethodPost, "/api/auth/logout", nil), http.StatusNoContent)
	s.expect(s.do(http.MethodGet, "/api/admin/dashboard", nil), http.StatusUnauthorized)
}

func TestPublicBookingFlow(t *testing.T) {
	s := newTestServer(t)
	s.login()
	s.seedCatalog()
	admin := s.token
	s.token = ""

	services := decode[struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}](t, s.do(http.MethodGet, "/api/public/services", nil))
	if services.Total != 1 {
		t.Fatalf("expected one public service, got %d", services.Total)
	}

	slots := s.do(http.MethodGet, "/api/public/slots?date=2030-01-15&barber_id=1&service_id=1", nil)
	s.expect(slots, http.StatusOK)

	booking := map[string]any{
		"customer_name": "Jane Doe", "customer_phone": "0911 000 111",
		"barber_id": 1, "service_id": 1, "date": "2030-01-15", "time": "10:00",
	}
	w := s.do(http.MethodPost, "/api/public/appointments", booking)
	s.expect(w, http.StatusCreated)
	first := decode[map[string]any](t, w)
	if first["time"] != "10:00 AM" {
		t.Fatalf("unexpected booking %v", first)
	}

	booking["time"] = "10:30"
	booking["customer_phone"] = "0911000111"
	s.expect(s.do(http.MethodPost, "/api/public/appointments", booking), http.StatusCreated)

	q := decode[map[string]any](t, s.do(http.MethodGet, "/api/public/appointments/2/queue", nil))
	if q["ahead"] != float64(1) || !strings.HasPrefix(q["message"].(string), "You're next") {
		t.Fatalf("unexpected queue status %v", q)
	}

	booking["service_id"] = 99
	w = s.do(http.MethodPost, "/api/public/appointments", booking)
	s.expect(w, http.StatusUnprocessableEntity)

	// A withdrawn barber cannot be booked publicly.
	s.token = admin
	s.expect(s.do(http.MethodPatch, "/api/admin/barbers/1", map[string]any{"status": "inactive"}), http.StatusOK)
	s.token = ""
	booking["service_id"] = 1
	w = s.do(http.MethodPost, "/api/public/appointments", booking)
	s.expect(w, http.StatusUnprocessableEntity)
	if body := decode[map[string]any](t, w); body["error_code"] != "barber_unavailable" {
		t.Fatalf("unexpected error %v", body)
	}

	// Same phone, one customer.
	s.token = admin
	customers := decode[struct {
		Total int `json:"total"`
	}](t, s.do(http.MethodGet, "/api/admin/customers", nil))
	if customers.Total != 1 {
		t.Fatalf("expected the phone to match one customer, got %d", customers.Total)
	}
}

func TestAppointmentAdminEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.login()
	s.seedCatalog()

	s.expect(s.do(http.MethodGet, "/api/admin/appointments/abc", nil), http.StatusBadRequest)
	s.expect(s.do(http.MethodGet, "/api/admin/appointments/42", nil), http.StatusNotFound)
	s.expect(s.do(http.MethodPatch, "/api/admin/appointments/42", map[string]any{"notes": "x"}), http.StatusNotFound)

	s.expect(s.do(http.MethodPost, "/api/admin/appointments", map[string]any{
		"customer_name": "Abel", "customer_phone": "0922", "barber_id": 1, "service_id": 1,
		"date": "2030-01-15", "time": "25:99",
	}), http.StatusBadRequest)

	s.expect(s.do(http.MethodPost, "/api/admin/appointments", map[string]any{
		"customer_name": "Abel", "customer_phone": "0922", "barber_id": 1, "service_id": 1,
		"date": "2030-01-15", "time": "2:30 PM",
	}), http.StatusCreated)

	w := s.do(http.MethodPatch, "/api/admin/appointments/1/status", map[string]string{"status": "completed"})
	s.expect(w, http.StatusOK)

	barber := decode[map[string]any](t, s.do(http.MethodGet, "/api/admin/barbers/1", nil))
	if barber["appointments"] != float64(1) || barber["earnings"] != float64(250) {
		t.Fatalf("barber not credited: %v", barber)
	}

	s.expect(s.do(http.MethodPatch, "/api/admin/appointments/1/status", map[string]string{"status": "done"}), http.StatusBadRequest)

	list := decode[struct {
		Data []map[string]any `json:"data"`
	}](t, s.do(http.MethodGet, "/api/admin/appointments?status=completed", nil))
	if len(list.Data) != 1 || list.Data[0]["customer_name"] != "Abel" || list.Data[0]["time"] != "2:30 PM" {
		t.Fatalf("unexpected list %v", list.Data)
	}

	s.expect(s.do(http.MethodDelete, "/api/admin/appointments/1", nil), http.StatusNoContent)
	s.expect(s.do(http.MethodDelete, "/api/admin/appointments/1", nil), http.StatusNotFound)
}

func TestSearchReportsAndExport(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w := s.do(http.MethodGet, "/api/admin/export/customers", nil)
	s.expect(w, http.StatusUnprocessableEntity)
	if got := decode[map[string]string](t, w)["error_code"]; got != "no_data" {
		t.Fatalf("unexpected error code %q", got)
	}

	s.seedCatalog()

	results := decode[struct {
		Data []map[string]any `json:"data"`
	}](t, s.do(http.MethodGet, "/api/admin/search?q=mas", nil))
	if len(results.Data) != 1 || results.Data[0]["kind"] != "barber" {
		t.Fatalf("unexpected search results %v", results.Data)
	}

	s.expect(s.do(http.MethodGet, "/api/admin/reports/revenue?period=week", nil), http.StatusOK)
	s.expect(s.do(http.MethodGet, "/api/admin/reports/payroll", nil), http.StatusBadRequest)
	s.expect(s.do(http.MethodGet, "/api/admin/reports/revenue?period=decade", nil), http.StatusBadRequest)

	w = s.do(http.MethodGet, "/api/admin/export/barbers", nil)
	s.expect(w, http.StatusOK)
	if !strings.HasPrefix(w.Body.String(), "id,first_name,last_name") {
		t.Fatalf("unexpected csv: %s", w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "barbers-") || !strings.Contains(cd, ".csv") {
		t.Fatalf("unexpected disposition %q", cd)
	}

	w = s.do(http.MethodGet, "/api/admin/export/report-services?format=xlsx&period=month", nil)
	s.expect(w, http.StatusOK)
	if !strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}

	s.expect(s.do(http.MethodGet, "/api/admin/export/invoices", nil), http.StatusNotFound)
	s.expect(s.do(http.MethodGet, "/api/admin/export/barbers?format=pdf", nil), http.StatusBadRequest)
}

func TestSettingsValidation(t *testing.T) {
	s := newTestServer(t)
	s.login()

	s.expect(s.do(http.MethodPut, "/api/admin/settings", map[string]any{
		"opening_time": "18:00", "closing_time": "09:00",
	}), http.StatusBadRequest)
	s.expect(s.do(http.MethodPut, "/api/admin/settings", map[string]any{"timezone": "Mars/Olympus"}), http.StatusBadRequest)

	w := s.do(http.MethodPut, "/api/admin/settings", map[string]any{"opening_time": "8:00 AM", "shop_name": "QuickCut Bole"})
	s.expect(w, http.StatusOK)
	got := decode[map[string]any](t, w)
	if got["opening_time"] != "08:00" || got["shop_name"] != "QuickCut Bole" {
		t.Fatalf("unexpected settings %v", got)
	}

	w = s.do(http.MethodPut, "/api/admin/settings/notifications", map[string]any{"sms": false})
	s.expect(w, http.StatusOK)
	notif := decode[map[string]bool](t, w)
	if notif["sms"] || !notif["email"] {
		t.Fatalf("unexpected notification settings %v", notif)
	}
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t)
	s.login()

	s.expect(s.do(http.MethodPut, "/api/admin/password", map[string]string{
		"current_password": "nope", "new_password": "Secret99", "confirm_password": "Secret99",
	}), http.StatusBadRequest)

	w := s.do(http.MethodPut, "/api/admin/password", map[string]string{
		"current_password": "admin123", "new_password": "Secret99", "confirm_password": "Secret99",
	})
	s.expect(w, http.StatusOK)
	if got := decode[map[string]string](t, w)["strength"]; got != "strong" {
		t.Fatalf("unexpected strength %q", got)
	}

	// The caller's own session survives the change.
	s.expect(s.do(http.MethodGet, "/api/auth/me", nil), http.StatusOK)
}
