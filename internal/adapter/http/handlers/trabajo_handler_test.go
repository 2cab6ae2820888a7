package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gestion_oficina/internal/adapter/http/handlers/mocks"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type trabajoMocks struct {
	trabajos *mocks.MockITrabajoUseCase
	items    *mocks.MockIItemUseCase
	pagos    *mocks.MockIPagoUseCase
}

func newTrabajoRouter(t *testing.T) (*gin.Engine, trabajoMocks) {
	ctrl := gomock.NewController(t)
	m := trabajoMocks{
		trabajos: mocks.NewMockITrabajoUseCase(ctrl),
		items:    mocks.NewMockIItemUseCase(ctrl),
		pagos:    mocks.NewMockIPagoUseCase(ctrl),
	}
	h := NewTrabajoHandler(m.trabajos, m.items, m.pagos, quietLogger())

	r := newTestRouter()
	r.POST("/v1/trabajos", h.CreateTrabajo)
	r.GET("/v1/trabajos", h.ListTrabajos)
	r.GET("/v1/trabajos/:id", h.GetTrabajo)
	r.PUT("/v1/trabajos/:id", h.UpdateTrabajo)
	r.PATCH("/v1/trabajos/:id/estado", h.ChangeTrabajoEstado)
	r.GET("/v1/trabajos/:id/items", h.ListTrabajoItems)
	r.POST("/v1/trabajos/:id/items", h.CreateTrabajoItem)
	r.GET("/v1/trabajos/:id/pagos", h.ListTrabajoPagos)
	return r, m
}

func TestTrabajoHandler_CreateTrabajo(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		r, _ := newTrabajoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/trabajos", `{"clienteId":"c-1","titulo":"Sucesion","fechaInicio":"01/06/2024"}`)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Details["fechaInicio"] == "" {
			t.Fatalf("expected fechaInicio detail: %s", w.Body.String())
		}
	})

	t.Run("inactive cliente", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.trabajos.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Trabajo{}, entities.ErrClienteInactive)
		w := doRequest(r, http.MethodPost, "/v1/trabajos", `{"clienteId":"c-1","titulo":"Sucesion"}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.trabajos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.TrabajoInput) (entities.Trabajo, error) {
			if in.ClienteID != "c-1" || !in.PresupuestoInicial.Equal(decimal.NewFromInt(1000)) || in.FechaFinEstimada == nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Trabajo{
				ID: "t-1", ClienteID: "c-1", Titulo: in.Titulo, Estado: entities.EstadoTrabajoPendiente,
				PresupuestoInicial: in.PresupuestoInicial, CostoFinal: in.PresupuestoInicial, SaldoPendiente: in.PresupuestoInicial,
				FechaInicio: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), FechaFinEstimada: in.FechaFinEstimada,
			}, nil
		})
		w := doRequest(r, http.MethodPost, "/v1/trabajos", `{"clienteId":"c-1","titulo":"Sucesion","presupuestoInicial":"1000","fechaInicio":"2024-06-01","fechaFinEstimada":"2024-06-30"}`)
		expectStatus(t, w, http.StatusCreated)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["saldoPendiente"] != "1000" || body["estado"] != "Pendiente" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTrabajoHandler_Queries(t *testing.T) {
	t.Run("list with filters", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.trabajos.EXPECT().List(gomock.Any(), usecase.TrabajoFilter{ClienteID: "c-1", Estado: entities.EstadoTrabajoEnProceso}).Return(nil, nil)
		w := doRequest(r, http.MethodGet, "/v1/trabajos?clienteId=c-1&estado=En%20proceso", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("detalle", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.trabajos.EXPECT().GetDetalle(gomock.Any(), "t-1").Return(usecase.TrabajoDetalle{
			Trabajo: entities.Trabajo{ID: "t-1", Estado: entities.EstadoTrabajoPendiente},
			Items:   []entities.Item{{ID: "i-1", TrabajoID: "t-1", Orden: 1}},
			Pagos:   []entities.Pago{{ID: "p-1", TrabajoID: "t-1", Monto: decimal.NewFromInt(50)}},
		}, nil)
		w := doRequest(r, http.MethodGet, "/v1/trabajos/t-1", "")
		expectStatus(t, w, http.StatusOK)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "t-1" || len(body["items"].([]any)) != 1 || len(body["pagos"].([]any)) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("detalle not found", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.trabajos.EXPECT().GetDetalle(gomock.Any(), "nope").Return(usecase.TrabajoDetalle{}, entities.ErrTrabajoNotFound)
		w := doRequest(r, http.MethodGet, "/v1/trabajos/nope", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("items and pagos", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.items.EXPECT().ListByTrabajo(gomock.Any(), "t-1").Return([]entities.Item{{ID: "i-1"}, {ID: "i-2"}}, nil)
		m.pagos.EXPECT().List(gomock.Any(), "t-1").Return([]entities.Pago{}, nil)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/trabajos/t-1/items", ""), http.StatusOK)
		w := doRequest(r, http.MethodGet, "/v1/trabajos/t-1/pagos", "")
		expectStatus(t, w, http.StatusOK)
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %s", w.Body.String())
		}
	})
}

func TestTrabajoHandler_Mutations(t *testing.T) {
	t.Run("update keeps clienteId optional", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.trabajos.EXPECT().Update(gomock.Any(), "t-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.TrabajoInput) (entities.Trabajo, error) {
			if in.ClienteID != "" || in.Titulo != "Nuevo" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Trabajo{ID: "t-1", Titulo: "Nuevo"}, nil
		})
		w := doRequest(r, http.MethodPut, "/v1/trabajos/t-1", `{"titulo":"Nuevo"}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("estado requires a value", func(t *testing.T) {
		r, _ := newTrabajoRouter(t)
		w := doRequest(r, http.MethodPatch, "/v1/trabajos/t-1/estado", `{}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("estado", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.trabajos.EXPECT().ChangeEstado(gomock.Any(), "t-1", entities.EstadoTrabajoCompletado).Return(entities.Trabajo{ID: "t-1", Estado: entities.EstadoTrabajoCompletado}, nil)
		w := doRequest(r, http.MethodPatch, "/v1/trabajos/t-1/estado", `{"estado":"Completado"}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("create item", func(t *testing.T) {
		r, m := newTrabajoRouter(t)
		m.items.EXPECT().Create(gomock.Any(), "t-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.ItemInput) (entities.Item, error) {
			if in.Titulo != "Demanda" || !in.CostoTotal.Equal(decimal.NewFromInt(200)) || in.Orden != nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Item{ID: "i-1", TrabajoID: "t-1", Orden: 1, CostoTotal: in.CostoTotal, Saldo: in.CostoTotal}, nil
		})
		w := doRequest(r, http.MethodPost, "/v1/trabajos/t-1/items", `{"titulo":"Demanda","costoTotal":200}`)
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("create item rejects orden 0", func(t *testing.T) {
		r, _ := newTrabajoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/trabajos/t-1/items", `{"titulo":"Demanda","orden":0}`)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Details["orden"] == "" {
			t.Fatalf("expected orden detail: %s", w.Body.String())
		}
	})
}
