package usecase

import (
	"context"
	"testing"
	"time"

	"gestion_oficina/internal/domain/entities"
	mock_interfaces "gestion_oficina/internal/usecase/interfaces/mocks"
	"gestion_oficina/pkg/clock"

	"go.uber.org/mock/gomock"
)

func TestClassifyVencimientos_Boundaries(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	trabajo := func(id string, due *time.Time) entities.Trabajo {
		return entities.Trabajo{ID: id, Titulo: "Trabajo " + id, Estado: entities.EstadoTrabajoPendiente, FechaFinEstimada: due}
	}

	cases := []struct {
		name     string
		due      *time.Time
		dias     int
		urgencia entities.Urgencia
		included bool
	}{
		{"due today", datePtr(2024, time.June, 10), 0, entities.UrgenciaUrgente, true},
		{"due yesterday", datePtr(2024, time.June, 9), -1, entities.UrgenciaVencido, true},
		{"due tomorrow", datePtr(2024, time.June, 11), 1, entities.UrgenciaUrgente, true},
		{"due in two days", datePtr(2024, time.June, 12), 2, entities.UrgenciaProximo, true},
		{"due at horizon", datePtr(2024, time.June, 17), 7, entities.UrgenciaProximo, true},
		{"due past horizon", datePtr(2024, time.June, 18), 8, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyVencimientos([]entities.Trabajo{trabajo("t1", tc.due)}, nil, now, time.UTC, DefaultTriageHorizonDays)
			if !tc.included {
				if len(got.Vencimientos) != 0 {
					t.Fatalf("expected entry to be excluded, got %+v", got.Vencimientos)
				}
				return
			}
			if len(got.Vencimientos) != 1 {
				t.Fatalf("expected one entry, got %d", len(got.Vencimientos))
			}
			v := got.Vencimientos[0]
			if v.DiasRestantes != tc.dias {
				t.Fatalf("expected diasRestantes %d, got %d", tc.dias, v.DiasRestantes)
			}
			if v.Urgencia != tc.urgencia {
				t.Fatalf("expected urgencia %s, got %s", tc.urgencia, v.Urgencia)
			}
		})
	}
}

func TestClassifyVencimientos_SelectionAndOrder(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	trabajos := []entities.Trabajo{
		{ID: "t-b", Titulo: "Beta", Estado: entities.EstadoTrabajoEnProceso, FechaFinEstimada: datePtr(2024, time.June, 12)},
		{ID: "t-a", Titulo: "Alfa", Estado: entities.EstadoTrabajoPendiente, FechaFinEstimada: datePtr(2024, time.June, 12)},
		{ID: "t-done", Titulo: "Cerrado", Estado: entities.EstadoTrabajoCompletado, FechaFinEstimada: datePtr(2024, time.June, 9)},
		{ID: "t-cancel", Titulo: "Cancelado", Estado: entities.EstadoTrabajoCancelado, FechaFinEstimada: datePtr(2024, time.June, 9)},
		{ID: "t-nodate", Titulo: "Sin fecha", Estado: entities.EstadoTrabajoPendiente},
		{ID: "t-late", Titulo: "Atrasado", Estado: entities.EstadoTrabajoPendiente, FechaFinEstimada: datePtr(2024, time.June, 1)},
	}
	items := []entities.Item{
		{ID: "i-1", TrabajoID: "t-a", Titulo: "Aaa paso", Estado: entities.EstadoItemEnProceso, FechaFinEstimada: datePtr(2024, time.June, 12)},
		{ID: "i-done", TrabajoID: "t-a", Titulo: "Listo", Estado: entities.EstadoItemCompletado, FechaFinEstimada: datePtr(2024, time.June, 10)},
		{ID: "i-today", TrabajoID: "t-b", Titulo: "Hoy", Estado: entities.EstadoItemPendiente, FechaFinEstimada: datePtr(2024, time.June, 10)},
	}

	got := ClassifyVencimientos(trabajos, items, now, time.UTC, DefaultTriageHorizonDays)

	wantOrder := []string{"t-late", "i-today", "t-a", "t-b", "i-1"}
	if len(got.Vencimientos) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d: %+v", len(wantOrder), len(got.Vencimientos), got.Vencimientos)
	}
	for i, id := range wantOrder {
		if got.Vencimientos[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got.Vencimientos[i].ID)
		}
	}
	if len(got.Vencidos) != 1 || len(got.Urgentes) != 1 || len(got.Proximos) != 3 {
		t.Fatalf("unexpected tiers: vencidos=%d urgentes=%d proximos=%d", len(got.Vencidos), len(got.Urgentes), len(got.Proximos))
	}
	if got.Vencimientos[1].Tipo != entities.TipoVencimientoItem || got.Vencimientos[1].TrabajoID != "t-b" {
		t.Fatalf("unexpected item entry: %+v", got.Vencimientos[1])
	}
}

func TestClassifyVencimientos_EmptyTiers(t *testing.T) {
	got := ClassifyVencimientos(nil, nil, time.Now(), time.UTC, DefaultTriageHorizonDays)
	if got.Vencimientos == nil || got.Vencidos == nil || got.Urgentes == nil || got.Proximos == nil {
		t.Fatalf("expected empty, non-nil tiers: %+v", got)
	}
}

func TestDiasRestantes_CalendarDays(t *testing.T) {
	t.Run("late evening due early next morning", func(t *testing.T) {
		now := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
		due := time.Date(2024, 6, 11, 0, 1, 0, 0, time.UTC)
		if got := DiasRestantes(due, now, time.UTC); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("dates are taken in the office time zone", func(t *testing.T) {
		loc := time.FixedZone("ART", -3*60*60)
		now := time.Date(2024, 6, 10, 12, 0, 0, 0, loc)
		// 02:00 UTC on the 11th is still the 10th in ART.
		due := time.Date(2024, 6, 11, 2, 0, 0, 0, time.UTC)
		if got := DiasRestantes(due, now, loc); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("across a DST change", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Madrid")
		if err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		now := time.Date(2024, 3, 30, 10, 0, 0, 0, loc)
		due := time.Date(2024, 4, 2, 10, 0, 0, 0, loc)
		if got := DiasRestantes(due, now, loc); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})
}

func TestDueDateTriage_Vencimientos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	trabajos := mock_interfaces.NewMockITrabajoRepository(ctrl)
	items := mock_interfaces.NewMockIItemRepository(ctrl)
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	uc := NewDueDateTriage(trabajos, items, clock.NewFixed(now), time.UTC, 0)

	trabajos.EXPECT().List(gomock.Any()).Return([]entities.Trabajo{
		{ID: "t1", Titulo: "Dentro", Estado: entities.EstadoTrabajoPendiente, FechaFinEstimada: datePtr(2024, time.June, 20)},
	}, nil).Times(2)
	items.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)

	t.Run("default horizon excludes day ten", func(t *testing.T) {
		got, err := uc.Vencimientos(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Vencimientos) != 0 {
			t.Fatalf("expected no entries, got %d", len(got.Vencimientos))
		}
	})

	t.Run("wider horizon includes it", func(t *testing.T) {
		got, err := uc.Vencimientos(context.Background(), 14)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Proximos) != 1 || got.Proximos[0].DiasRestantes != 10 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
