package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"gestion_oficina/internal/adapter/http/handlers/mocks"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type eventoMocks struct {
	eventos  *mocks.MockIEventoUseCase
	calendar *mocks.MockICalendarExportUseCase
}

func newEventoRouter(t *testing.T) (*gin.Engine, eventoMocks) {
	ctrl := gomock.NewController(t)
	m := eventoMocks{eventos: mocks.NewMockIEventoUseCase(ctrl), calendar: mocks.NewMockICalendarExportUseCase(ctrl)}
	h := NewEventoHandler(m.eventos, m.calendar, quietLogger())

	r := newTestRouter()
	r.POST("/v1/eventos", h.CreateEvento)
	r.GET("/v1/eventos", h.ListEventos)
	r.GET("/v1/eventos/export.ics", h.ExportCalendar)
	r.GET("/v1/eventos/:id", h.GetEvento)
	r.PUT("/v1/eventos/:id", h.UpdateEvento)
	r.DELETE("/v1/eventos/:id", h.DeleteEvento)
	return r, m
}

func TestEventoHandler_CreateEvento(t *testing.T) {
	t.Run("lead time above limit", func(t *testing.T) {
		r, _ := newEventoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/eventos", `{"titulo":"Audiencia","fechaEvento":"2024-06-10T10:00:00Z","recordatorioHorasAntes":1000}`)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Details["recordatorioHorasAntes"] == "" {
			t.Fatalf("expected recordatorioHorasAntes detail: %s", w.Body.String())
		}
	})

	t.Run("missing fecha", func(t *testing.T) {
		r, _ := newEventoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/eventos", `{"titulo":"Audiencia"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		r, m := newEventoRouter(t)
		m.eventos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.EventoInput) (entities.Evento, error) {
			if in.RecordatorioHorasAntes == nil || *in.RecordatorioHorasAntes != 2 || in.Tipo != entities.TipoEventoAudiencia {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Evento{ID: "e-1", Titulo: in.Titulo, FechaEvento: in.FechaEvento, Tipo: in.Tipo, Origen: entities.OrigenEventoManual, RecordatorioHorasAntes: 2}, nil
		})
		w := doRequest(r, http.MethodPost, "/v1/eventos", `{"titulo":"Audiencia","fechaEvento":"2024-06-10T10:00:00Z","tipo":"audiencia","recordatorioHorasAntes":2}`)
		expectStatus(t, w, http.StatusCreated)
	})
}

func TestEventoHandler_Crud(t *testing.T) {
	t.Run("list invalid mes", func(t *testing.T) {
		r, m := newEventoRouter(t)
		m.eventos.EXPECT().List(gomock.Any(), "junio").Return(nil, usecase.ErrInvalidMes)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/eventos?mes=junio", ""), http.StatusBadRequest)
	})

	t.Run("get", func(t *testing.T) {
		r, m := newEventoRouter(t)
		m.eventos.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Evento{ID: "e-1"}, nil)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/eventos/e-1", ""), http.StatusOK)
	})

	t.Run("update", func(t *testing.T) {
		r, m := newEventoRouter(t)
		m.eventos.EXPECT().Update(gomock.Any(), "e-1", gomock.Any()).Return(entities.Evento{ID: "e-1"}, nil)
		expectStatus(t, doRequest(r, http.MethodPut, "/v1/eventos/e-1", `{"titulo":"Reunion","fechaEvento":"2024-06-11"}`), http.StatusOK)
	})

	t.Run("delete missing", func(t *testing.T) {
		r, m := newEventoRouter(t)
		m.eventos.EXPECT().Delete(gomock.Any(), "e-9").Return(entities.ErrEventoNotFound)
		expectStatus(t, doRequest(r, http.MethodDelete, "/v1/eventos/e-9", ""), http.StatusNotFound)
	})
}

func TestEventoHandler_ExportCalendar(t *testing.T) {
	r, m := newEventoRouter(t)
	ics := usecase.RenderICS([]entities.Evento{{ID: "e-1", Titulo: "Audiencia", FechaEvento: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), Tipo: entities.TipoEventoAudiencia}}, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	m.calendar.EXPECT().Export(gomock.Any(), "2024-06").Return(ics, nil)

	w := doRequest(r, http.MethodGet, "/v1/eventos/export.ics?mes=2024-06", "")
	expectStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "calendario-2024-06.ics") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VEVENT\r\n") {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}
