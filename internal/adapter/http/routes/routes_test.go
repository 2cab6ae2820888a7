package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gestion_oficina/internal/infrastructure/config"
	"gestion_oficina/internal/infrastructure/logging"
	"gestion_oficina/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func memoryConfig() config.Config {
	return config.Config{
		Env:                  "development",
		StorageDriver:        config.StorageDriverMemory,
		PaymentGatewayMock:   true,
		ReminderPollInterval: time.Minute,
		TriageHorizonDays:    7,
		Location:             time.UTC,
		PhoneRegion:          "ES",
		DocumentMaxBytes:     1 << 20,
		AdminUser:            "admin",
	}
}

func newTestApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, err := newContainer(context.Background(), cfg, logging.GetLogger())
	if err != nil {
		t.Fatalf("newContainer: %v", err)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	getRoutes(router, cfg, c)
	return router
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestNewContainer_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"
	if _, err := newContainer(context.Background(), cfg, logging.GetLogger()); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestRoutes_PingIsPublic(t *testing.T) {
	cfg := memoryConfig()
	hash, err := security.NewBcryptHasher(bcrypt.MinCost).Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cfg.AdminPasswordHash = hash
	r := newTestApp(t, cfg)

	w, body := call(t, r, http.MethodGet, "/v1/ping", nil)
	if w.Code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("ping: %d %v", w.Code, body)
	}

	w, _ = call(t, r, http.MethodGet, "/v1/clientes", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/clientes", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with credentials, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRoutes_PaymentFlowUpdatesDebt(t *testing.T) {
	r := newTestApp(t, memoryConfig())

	w, cliente := call(t, r, http.MethodPost, "/v1/clientes", map[string]any{"nombre": "Ana Pérez"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create cliente: %d %s", w.Code, w.Body.String())
	}
	clienteID := cliente["id"].(string)

	w, trabajo := call(t, r, http.MethodPost, "/v1/trabajos", map[string]any{
		"clienteId":          clienteID,
		"titulo":             "Declaración anual",
		"presupuestoInicial": "1500",
		"costoFinal":         "1500",
		"fechaInicio":        "2024-06-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create trabajo: %d %s", w.Code, w.Body.String())
	}
	trabajoID := trabajo["id"].(string)

	w, pago := call(t, r, http.MethodPost, "/v1/pagos", map[string]any{
		"trabajoId":  trabajoID,
		"monto":      "400",
		"metodoPago": "efectivo",
		"fecha":      "2024-06-10",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create pago: %d %s", w.Code, w.Body.String())
	}

	_, detalle := call(t, r, http.MethodGet, "/v1/trabajos/"+trabajoID, nil)
	if detalle["saldoPendiente"] != "1100" {
		t.Errorf("saldoPendiente = %v", detalle["saldoPendiente"])
	}
	_, got := call(t, r, http.MethodGet, "/v1/clientes/"+clienteID, nil)
	if got["deudaTotalActual"] != "1100" {
		t.Errorf("deudaTotalActual = %v", got["deudaTotalActual"])
	}

	w, _ = call(t, r, http.MethodDelete, "/v1/pagos/"+pago["id"].(string), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete pago: %d %s", w.Code, w.Body.String())
	}
	_, got = call(t, r, http.MethodGet, "/v1/clientes/"+clienteID, nil)
	if got["deudaTotalActual"] != "1500" {
		t.Errorf("deudaTotalActual after reversal = %v", got["deudaTotalActual"])
	}
}

func TestRoutes_EventosExportDoesNotShadowID(t *testing.T) {
	r := newTestApp(t, memoryConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/eventos/export.ics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("export: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content-type = %q", ct)
	}

	w2, _ := call(t, r, http.MethodGet, "/v1/eventos/does-not-exist", nil)
	if w2.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown evento, got %d", w2.Code)
	}
}
