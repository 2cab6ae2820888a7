package usecase

import (
	"context"
	"fmt"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/sirupsen/logrus"
)

type IBackupUseCase interface {
	Export(ctx context.Context) (entities.Backup, error)
	Import(ctx context.Context, b entities.Backup, confirm bool) error
}

// BackupRepositories groups the stores a backup reads and replaces.
type BackupRepositories struct {
	Clientes   interfaces.IClienteRepository
	Trabajos   interfaces.ITrabajoRepository
	Items      interfaces.IItemRepository
	Pagos      interfaces.IPagoRepository
	Eventos    interfaces.IEventoRepository
	Documentos interfaces.IDocumentoRepository
	Catalogos  interfaces.ICatalogoRepository
}

type BackupUseCase struct {
	repos  BackupRepositories
	clock  clock.Clock
	logger logrus.FieldLogger
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(repos BackupRepositories, clk clock.Clock, logger logrus.FieldLogger) *BackupUseCase {
	return &BackupUseCase{repos: repos, clock: clk, logger: logger}
}

// Export snapshots every collection. Documento contents are redacted.
func (u *BackupUseCase) Export(ctx context.Context) (entities.Backup, error) {
	b := entities.Backup{Version: entities.BackupVersion, Timestamp: u.clock.Now().UTC()}
	var err error
	if b.Clientes, err = u.repos.Clientes.List(ctx); err != nil {
		return entities.Backup{}, err
	}
	if b.Trabajos, err = u.repos.Trabajos.List(ctx); err != nil {
		return entities.Backup{}, err
	}
	if b.Items, err = u.repos.Items.List(ctx); err != nil {
		return entities.Backup{}, err
	}
	if b.Pagos, err = u.repos.Pagos.List(ctx); err != nil {
		return entities.Backup{}, err
	}
	if b.Eventos, err = u.repos.Eventos.List(ctx); err != nil {
		return entities.Backup{}, err
	}
	if b.Documentos, err = u.repos.Documentos.List(ctx); err != nil {
		return entities.Backup{}, err
	}
	for i := range b.Documentos {
		b.Documentos[i].ArchivoBase64 = ""
	}
	for _, c := range []struct {
		tipo entities.TipoCatalogo
		dst  *[]entities.CatalogoEntry
	}{
		{entities.CatalogoTiposCliente, &b.TiposCliente},
		{entities.CatalogoTiposTrabajo, &b.TiposTrabajo},
		{entities.CatalogoCategorias, &b.Categorias},
		{entities.CatalogoEstadosKanban, &b.EstadosKanban},
	} {
		if *c.dst, err = u.repos.Catalogos.ListByTipo(ctx, c.tipo); err != nil {
			return entities.Backup{}, err
		}
	}
	u.logger.WithFields(logrus.Fields{"clientes": len(b.Clientes), "trabajos": len(b.Trabajos), "pagos": len(b.Pagos)}).Info("[backup][usecase] exported")
	return b, nil
}

// Import replaces every collection with the backup's content. Nothing is
// written unless confirm is set and the whole document validates.
func (u *BackupUseCase) Import(ctx context.Context, b entities.Backup, confirm bool) error {
	if !confirm {
		return entities.ErrImportNotConfirmed
	}
	if err := ValidateBackup(b); err != nil {
		return err
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"clientes", func() error { return u.repos.Clientes.ReplaceAll(ctx, b.Clientes) }},
		{"trabajos", func() error { return u.repos.Trabajos.ReplaceAll(ctx, b.Trabajos) }},
		{"items", func() error { return u.repos.Items.ReplaceAll(ctx, b.Items) }},
		{"pagos", func() error { return u.repos.Pagos.ReplaceAll(ctx, b.Pagos) }},
		{"eventos", func() error { return u.repos.Eventos.ReplaceAll(ctx, b.Eventos) }},
		{"documentos", func() error { return u.repos.Documentos.ReplaceAll(ctx, b.Documentos) }},
		{"tiposCliente", func() error {
			return u.repos.Catalogos.ReplaceAll(ctx, entities.CatalogoTiposCliente, b.TiposCliente)
		}},
		{"tiposTrabajo", func() error {
			return u.repos.Catalogos.ReplaceAll(ctx, entities.CatalogoTiposTrabajo, b.TiposTrabajo)
		}},
		{"categorias", func() error {
			return u.repos.Catalogos.ReplaceAll(ctx, entities.CatalogoCategorias, b.Categorias)
		}},
		{"estadosKanban", func() error {
			return u.repos.Catalogos.ReplaceAll(ctx, entities.CatalogoEstadosKanban, b.EstadosKanban)
		}},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			u.logger.WithError(err).WithField("collection", s.name).Error("[backup][usecase] import failed mid-way")
			return fmt.Errorf("import %s: %w", s.name, err)
		}
	}
	u.logger.WithField("timestamp", b.Timestamp).Warn("[backup][usecase] backup imported, previous data replaced")
	return nil
}

// ValidateBackup checks version, ids, enums and references of the whole
// document.
func ValidateBackup(b entities.Backup) error {
	if b.Version != entities.BackupVersion {
		return entities.ErrUnsupportedBackupVersion
	}

	clientes := map[string]bool{}
	for i, c := range b.Clientes {
		if err := uniqueID(clientes, "clientes", i, c.ID); err != nil {
			return err
		}
	}
	trabajos := map[string]bool{}
	for i, t := range b.Trabajos {
		if err := uniqueID(trabajos, "trabajos", i, t.ID); err != nil {
			return err
		}
		if !clientes[t.ClienteID] {
			return entities.NewValidationError(fmt.Sprintf("trabajos[%d].clienteId", i), "unknown cliente")
		}
		if !t.Estado.Valid() {
			return entities.NewValidationError(fmt.Sprintf("trabajos[%d].estado", i), "unknown estado")
		}
	}
	items := map[string]string{}
	seenItems := map[string]bool{}
	for i, it := range b.Items {
		if err := uniqueID(seenItems, "items", i, it.ID); err != nil {
			return err
		}
		if !trabajos[it.TrabajoID] {
			return entities.NewValidationError(fmt.Sprintf("items[%d].trabajoId", i), "unknown trabajo")
		}
		if !it.Estado.Valid() {
			return entities.NewValidationError(fmt.Sprintf("items[%d].estado", i), "unknown estado")
		}
		items[it.ID] = it.TrabajoID
	}
	pagos := map[string]bool{}
	for i, p := range b.Pagos {
		if err := uniqueID(pagos, "pagos", i, p.ID); err != nil {
			return err
		}
		if !trabajos[p.TrabajoID] {
			return entities.NewValidationError(fmt.Sprintf("pagos[%d].trabajoId", i), "unknown trabajo")
		}
		if p.ItemID != "" && items[p.ItemID] != p.TrabajoID {
			return entities.NewValidationError(fmt.Sprintf("pagos[%d].itemId", i), "unknown item for trabajo")
		}
		if !p.Monto.IsPositive() {
			return entities.NewValidationError(fmt.Sprintf("pagos[%d].monto", i), "must be > 0")
		}
		if !p.MetodoPago.Valid() {
			return entities.NewValidationError(fmt.Sprintf("pagos[%d].metodoPago", i), "unknown metodo")
		}
	}
	eventos := map[string]bool{}
	for i, e := range b.Eventos {
		if err := uniqueID(eventos, "eventos", i, e.ID); err != nil {
			return err
		}
		if !e.Tipo.Valid() {
			return entities.NewValidationError(fmt.Sprintf("eventos[%d].tipo", i), "unknown tipo")
		}
		if e.RecordatorioHorasAntes < 0 {
			return entities.NewValidationError(fmt.Sprintf("eventos[%d].recordatorioHorasAntes", i), "must be >= 0")
		}
	}
	documentos := map[string]bool{}
	for i, d := range b.Documentos {
		if err := uniqueID(documentos, "documentos", i, d.ID); err != nil {
			return err
		}
	}
	for name, list := range map[string][]entities.CatalogoEntry{
		"tiposCliente":  b.TiposCliente,
		"tiposTrabajo":  b.TiposTrabajo,
		"categorias":    b.Categorias,
		"estadosKanban": b.EstadosKanban,
	} {
		seen := map[string]bool{}
		for i, e := range list {
			if err := uniqueID(seen, name, i, e.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func uniqueID(seen map[string]bool, collection string, i int, id string) error {
	field := fmt.Sprintf("%s[%d].id", collection, i)
	if id == "" {
		return entities.NewValidationError(field, "required")
	}
	if seen[id] {
		return entities.NewValidationError(field, "duplicated")
	}
	seen[id] = true
	return nil
}
