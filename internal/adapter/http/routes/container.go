package routes

import (
	"context"
	"fmt"
	"io"

	"gestion_oficina/internal/adapter/http/dto/request"
	"gestion_oficina/internal/adapter/http/handlers"
	"gestion_oficina/internal/adapter/persistence/memory"
	"gestion_oficina/internal/adapter/persistence/repository"
	"gestion_oficina/internal/infrastructure/config"
	"gestion_oficina/internal/infrastructure/database"
	"gestion_oficina/internal/infrastructure/locking"
	"gestion_oficina/internal/infrastructure/notifications"
	"gestion_oficina/internal/infrastructure/payments"
	"gestion_oficina/internal/infrastructure/security"
	"gestion_oficina/internal/infrastructure/storage"
	"gestion_oficina/internal/usecase"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/sirupsen/logrus"
)

type repositories struct {
	clientes   interfaces.IClienteRepository
	trabajos   interfaces.ITrabajoRepository
	items      interfaces.IItemRepository
	pagos      interfaces.IPagoRepository
	ledger     interfaces.ILedgerRepository
	eventos    interfaces.IEventoRepository
	documentos interfaces.IDocumentoRepository
	catalogos  interfaces.ICatalogoRepository
}

type container struct {
	clientes    *handlers.ClienteHandler
	trabajos    *handlers.TrabajoHandler
	items       *handlers.ItemHandler
	pagos       *handlers.PagoHandler
	eventos     *handlers.EventoHandler
	vencimiento *handlers.VencimientoHandler
	documentos  *handlers.DocumentoHandler
	catalogos   *handlers.CatalogoHandler
	backup      *handlers.BackupHandler
	reportes    *handlers.ReporteHandler

	hasher    interfaces.IPasswordHasher
	scheduler *usecase.ReminderScheduler
	closers   []io.Closer
}

func (c *container) Close(logger logrus.FieldLogger) {
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			logger.WithError(err).Warn("[routes] close failed")
		}
	}
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logrus.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("[routes] STORAGE_DRIVER=memory: data is lost on restart")
		store := memory.NewStore()
		return repositories{
			clientes:   store.Clientes(),
			trabajos:   store.Trabajos(),
			items:      store.Items(),
			pagos:      store.Pagos(),
			ledger:     store.Ledger(),
			eventos:    store.Eventos(),
			documentos: store.Documentos(),
			catalogos:  store.Catalogos(),
		}, nil
	case config.StorageDriverDynamoDB:
		ddb := database.ConnectDynamoDB(ctx)
		if cfg.DynamoDBAutoCreateTables {
			if err := database.EnsureTables(ctx, ddb, database.OfficeTables()); err != nil {
				return repositories{}, fmt.Errorf("ensure dynamodb tables: %w", err)
			}
		}
		return repositories{
			clientes:   repository.NewClienteDynamoRepository(ddb),
			trabajos:   repository.NewTrabajoDynamoRepository(ddb),
			items:      repository.NewItemDynamoRepository(ddb),
			pagos:      repository.NewPagoDynamoRepository(ddb),
			ledger:     repository.NewLedgerDynamoRepository(ddb),
			eventos:    repository.NewEventoDynamoRepository(ddb),
			documentos: repository.NewDocumentoDynamoRepository(ddb),
			catalogos:  repository.NewCatalogoDynamoRepository(ddb),
		}, nil
	}
	return repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}

// newContainer wires repositories, infrastructure collaborators, use cases
// and handlers. Optional collaborators (Redis, Pub/Sub, GCS, Mercado Pago)
// fall back to in-process implementations when not configured.
func newContainer(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*container, error) {
	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c := &container{hasher: security.NewBcryptHasher(0)}

	var locker interfaces.ILocker = locking.NewLocalLocker()
	if cfg.RedisAddress != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisAddress)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, rdb)
		locker = locking.NewRedisLocker(rdb)
		logger.WithField("addr", cfg.RedisAddress).Info("[routes] using redis locks")
	}

	var notifier interfaces.INotifier = notifications.NewLogNotifier(logger)
	if cfg.PubSubProjectID != "" && cfg.PubSubTopic != "" {
		ps, err := notifications.NewPubSubNotifier(ctx, cfg.PubSubProjectID, cfg.PubSubTopic, cfg.GoogleCredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("pubsub notifier: %w", err)
		}
		c.closers = append(c.closers, ps)
		notifier = ps
	}

	var blobs interfaces.IBlobStore
	if cfg.GCSBucket != "" {
		gcs, err := storage.NewGCSBlobStore(ctx, cfg.GCSBucket, cfg.GoogleCredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("gcs blob store: %w", err)
		}
		c.closers = append(c.closers, gcs)
		blobs = gcs
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.WithError(err).Warn("[routes] Mercado Pago gateway not configured")
	} else {
		gateway = mp
	}

	request.SetDateLocation(cfg.Location)
	clk := clock.NewReal()
	ledger := usecase.NewLedgerEngine(repos.trabajos, repos.items, repos.clientes, repos.pagos, repos.ledger, locker, clk, logger)
	eventoUC := usecase.NewEventoUseCase(repos.eventos, repos.trabajos, clk, cfg.Location, logger)
	clienteUC := usecase.NewClienteUseCase(repos.clientes, repos.trabajos, ledger, clk, cfg.PhoneRegion, logger)
	trabajoUC := usecase.NewTrabajoUseCase(repos.trabajos, repos.clientes, repos.items, repos.pagos, ledger, eventoUC, clk, logger)
	itemUC := usecase.NewItemUseCase(repos.items, repos.trabajos, repos.pagos, eventoUC, clk, logger)
	pagoUC := usecase.NewPagoUseCase(repos.pagos, repos.trabajos, ledger, gateway, usecase.PagoGatewayOptions{
		MockMode:        cfg.PaymentGatewayMock,
		SandboxMode:     cfg.MercadoPagoSandbox(),
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}, logger)
	triage := usecase.NewDueDateTriage(repos.trabajos, repos.items, clk, cfg.Location, cfg.TriageHorizonDays)
	dashboardUC := usecase.NewDashboardUseCase(repos.clientes, repos.trabajos, triage, eventoUC)
	documentoUC := usecase.NewDocumentoUseCase(repos.documentos, repos.clientes, repos.trabajos, blobs, cfg.DocumentMaxBytes, clk, logger)
	catalogoUC := usecase.NewCatalogoUseCase(repos.catalogos)
	backupUC := usecase.NewBackupUseCase(usecase.BackupRepositories{
		Clientes:   repos.clientes,
		Trabajos:   repos.trabajos,
		Items:      repos.items,
		Pagos:      repos.pagos,
		Eventos:    repos.eventos,
		Documentos: repos.documentos,
		Catalogos:  repos.catalogos,
	}, clk, logger)
	reportUC := usecase.NewReportUseCase(triage, repos.clientes, repos.trabajos, logger)

	c.scheduler = usecase.NewReminderScheduler(repos.eventos, notifier, locker, clk, cfg.ReminderPollInterval, logger)

	c.clientes = handlers.NewClienteHandler(clienteUC, logger)
	c.trabajos = handlers.NewTrabajoHandler(trabajoUC, itemUC, pagoUC, logger)
	c.items = handlers.NewItemHandler(itemUC, logger)
	c.pagos = handlers.NewPagoHandler(pagoUC, logger)
	c.eventos = handlers.NewEventoHandler(eventoUC, usecase.NewCalendarExport(eventoUC, clk), logger)
	c.vencimiento = handlers.NewVencimientoHandler(triage, dashboardUC, cfg.TriageHorizonDays, logger)
	c.documentos = handlers.NewDocumentoHandler(documentoUC, logger)
	c.catalogos = handlers.NewCatalogoHandler(catalogoUC, logger)
	c.backup = handlers.NewBackupHandler(backupUC, logger)
	c.reportes = handlers.NewReporteHandler(reportUC, logger)
	return c, nil
}
