package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gestion_oficina/internal/adapter/persistence/memory"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/pkg/clock"
)

func backupRepos(s *memory.Store) BackupRepositories {
	return BackupRepositories{
		Clientes:   s.Clientes(),
		Trabajos:   s.Trabajos(),
		Items:      s.Items(),
		Pagos:      s.Pagos(),
		Eventos:    s.Eventos(),
		Documentos: s.Documentos(),
		Catalogos:  s.Catalogos(),
	}
}

func TestBackupUseCase_RoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newOfficeEnv(t)
	c := env.cliente(t, "Diego Funes")
	tr, err := env.trabajos.Create(ctx, TrabajoInput{ClienteID: c.ID, Titulo: "Sucesión", PresupuestoInicial: dec("900"), FechaFinEstimada: datePtr(2024, time.June, 20)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := env.item(t, tr.ID, "Paso 1", "300")
	if _, err := env.pagos.Create(ctx, PagoInput{TrabajoID: tr.ID, ItemID: it.ID, Monto: dec("100"), MetodoPago: entities.MetodoPagoEfectivo}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewCatalogoUseCase(env.store.Catalogos()).Create(ctx, entities.CatalogoEstadosKanban, CatalogoInput{Nombre: "En curso"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := env.store.Documentos().Create(ctx, entities.Documento{ID: "d-1", Nombre: "a.txt", ArchivoBase64: "aG9sYQ=="}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src := NewBackupUseCase(backupRepos(env.store), clock.NewFixed(env.now), quietLogger())
	exported, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exported.Version != entities.BackupVersion || len(exported.Eventos) != 1 || len(exported.EstadosKanban) != 1 {
		t.Fatalf("unexpected export: %+v", exported)
	}
	if exported.Documentos[0].ArchivoBase64 != "" {
		t.Fatalf("expected documento content to be redacted")
	}

	raw, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded entities.Backup
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target := memory.NewStore()
	if _, err := target.Clientes().Create(ctx, entities.Cliente{ID: "stale", Nombre: "Borrar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dst := NewBackupUseCase(backupRepos(target), clock.NewFixed(env.now), quietLogger())
	if err := dst.Import(ctx, decoded, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stale, _ := target.Clientes().GetByID(ctx, "stale"); stale.ID != "" {
		t.Fatalf("expected previous data to be replaced")
	}
	gotTrabajo, _ := target.Trabajos().GetByID(ctx, tr.ID)
	assertDecimal(t, "saldo", gotTrabajo.SaldoPendiente, "800")
	gotCliente, _ := target.Clientes().GetByID(ctx, c.ID)
	assertDecimal(t, "deuda", gotCliente.DeudaTotalActual, "800")
	gotItem, _ := target.Items().GetByID(ctx, it.ID)
	assertDecimal(t, "item saldo", gotItem.Saldo, "200")

	again, err := dst.Export(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Clientes) != 1 || len(again.Trabajos) != 1 || len(again.Items) != 1 || len(again.Pagos) != 1 || len(again.EstadosKanban) != 1 {
		t.Fatalf("unexpected re-export: %+v", again)
	}
	if want, got := comparableBackup(t, exported), comparableBackup(t, again); want != got {
		t.Fatalf("re-export differs from the original\nwant: %s\ngot:  %s", want, got)
	}
}

// comparableBackup renders b as JSON without the fields an export is allowed
// to change: timestamp and documento content.
func comparableBackup(t *testing.T, b entities.Backup) string {
	t.Helper()
	b.Timestamp = time.Time{}
	docs := make([]entities.Documento, len(b.Documentos))
	for i, d := range b.Documentos {
		d.ArchivoBase64 = ""
		docs[i] = d
	}
	b.Documentos = docs
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal backup: %v", err)
	}
	return string(raw)
}

func TestBackupUseCase_ImportRejections(t *testing.T) {
	ctx := context.Background()
	valid := func() entities.Backup {
		return entities.Backup{
			Version:  entities.BackupVersion,
			Clientes: []entities.Cliente{{ID: "c1", Nombre: "Uno"}},
			Trabajos: []entities.Trabajo{{ID: "t1", ClienteID: "c1", Estado: entities.EstadoTrabajoPendiente}},
			Items:    []entities.Item{{ID: "i1", TrabajoID: "t1", Estado: entities.EstadoItemPendiente}},
			Pagos:    []entities.Pago{{ID: "p1", TrabajoID: "t1", ItemID: "i1", Monto: dec("5"), MetodoPago: entities.MetodoPagoEfectivo}},
		}
	}

	cases := []struct {
		name   string
		mutate func(b *entities.Backup)
		want   error
	}{
		{"unsupported version", func(b *entities.Backup) { b.Version = "2" }, entities.ErrUnsupportedBackupVersion},
		{"duplicated cliente id", func(b *entities.Backup) { b.Clientes = append(b.Clientes, entities.Cliente{ID: "c1"}) }, entities.ErrValidation},
		{"trabajo with unknown cliente", func(b *entities.Backup) { b.Trabajos[0].ClienteID = "zz" }, entities.ErrValidation},
		{"unknown estado", func(b *entities.Backup) { b.Trabajos[0].Estado = "Archivado" }, entities.ErrValidation},
		{"item with unknown trabajo", func(b *entities.Backup) { b.Items[0].TrabajoID = "zz" }, entities.ErrValidation},
		{"pago item of another trabajo", func(b *entities.Backup) {
			b.Trabajos = append(b.Trabajos, entities.Trabajo{ID: "t2", ClienteID: "c1", Estado: entities.EstadoTrabajoPendiente})
			b.Pagos[0].TrabajoID = "t2"
		}, entities.ErrValidation},
		{"negative monto", func(b *entities.Backup) { b.Pagos[0].Monto = dec("-1") }, entities.ErrValidation},
		{"missing evento id", func(b *entities.Backup) {
			b.Eventos = []entities.Evento{{Tipo: entities.TipoEventoOtro}}
		}, entities.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore()
			_, _ = store.Clientes().Create(ctx, entities.Cliente{ID: "keep", Nombre: "Sigue"})
			uc := NewBackupUseCase(backupRepos(store), clock.NewReal(), quietLogger())
			b := valid()
			tc.mutate(&b)

			if err := uc.Import(ctx, b, true); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if keep, _ := store.Clientes().GetByID(ctx, "keep"); keep.ID == "" {
				t.Fatalf("expected existing data to be untouched")
			}
		})
	}

	t.Run("requires confirmation", func(t *testing.T) {
		uc := NewBackupUseCase(backupRepos(memory.NewStore()), clock.NewReal(), quietLogger())
		if err := uc.Import(ctx, valid(), false); !errors.Is(err, entities.ErrImportNotConfirmed) {
			t.Fatalf("expected ErrImportNotConfirmed, got %v", err)
		}
	})
}
