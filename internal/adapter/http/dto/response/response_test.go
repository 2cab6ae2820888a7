package response

import (
	"encoding/json"
	"testing"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromCliente_SerializesDebtAsString(t *testing.T) {
	c := entities.Cliente{ID: "c-1", Nombre: "Ana", Activo: true, DeudaTotalActual: decimal.RequireFromString("350.25")}
	raw, err := json.Marshal(FromCliente(c))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["deudaTotalActual"] != "350.25" {
		t.Fatalf("unexpected debt field: %s", raw)
	}
	if _, ok := body["version"]; ok {
		t.Fatalf("version must not leak: %s", raw)
	}
}

func TestFromDocumento_OmitsContent(t *testing.T) {
	d := entities.Documento{ID: "d-1", Nombre: "poder.pdf", TipoMime: "application/pdf", Tamano: 12, ArchivoBase64: "SGVsbG8="}
	raw, _ := json.Marshal(FromDocumento(d))
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if _, ok := body["archivoBase64"]; ok {
		t.Fatalf("content must not be returned: %s", raw)
	}
	if body["tamano"].(float64) != 12 {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestFromTrabajoDetalle(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	d := usecase.TrabajoDetalle{
		Trabajo: entities.Trabajo{ID: "t-1", Estado: entities.EstadoTrabajoPendiente, FechaInicio: now},
		Items:   []entities.Item{{ID: "i-1", TrabajoID: "t-1", Orden: 1}},
	}
	res := FromTrabajoDetalle(d)
	if res.ID != "t-1" || res.Estado != "Pendiente" || len(res.Items) != 1 {
		t.Fatalf("unexpected detalle: %+v", res)
	}
	if res.Pagos == nil {
		t.Fatalf("pagos must serialize as an empty list")
	}
}

func TestFromVencimientos_EmptyTiersAreLists(t *testing.T) {
	res := FromVencimientos(7, entities.ResumenVencimientos{
		Vencimientos: []entities.Vencimiento{{ID: "t-1", Urgencia: entities.UrgenciaUrgente}},
		Urgentes:     []entities.Vencimiento{{ID: "t-1", Urgencia: entities.UrgenciaUrgente}},
	})
	raw, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if _, ok := body["vencidos"].([]any); !ok {
		t.Fatalf("vencidos must be an empty list: %s", raw)
	}
	if res.Urgentes[0].Urgencia != "urgente" || res.Horizonte != 7 {
		t.Fatalf("unexpected response: %+v", res)
	}
}
