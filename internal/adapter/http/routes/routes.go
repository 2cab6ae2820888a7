package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "gestion_oficina/docs"
	"gestion_oficina/internal/adapter/http/middleware"
	"gestion_oficina/internal/infrastructure/config"
	"gestion_oficina/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	logger := logging.GetLogger()
	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	c, err := newContainer(sigCtx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("[routes] failed to wire application")
	}
	defer c.Close(logger)

	router := gin.New()
	setMiddlewares(router, cfg)
	getRoutes(router, cfg, c)

	if c.scheduler.Start(sigCtx) {
		logger.WithField("interval", cfg.ReminderPollInterval.String()).Info("[routes] reminder scheduler started")
	}
	defer c.scheduler.Stop()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()
	logger.WithField("port", cfg.Port).Info("[routes] listening")

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to startup the application")
		}
	case <-sigCtx.Done():
		logger.Info("[routes] shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("[routes] graceful shutdown failed")
		}
	}
}

func getRoutes(router *gin.Engine, cfg config.Config, c *container) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	private := v1.Group("")
	if cfg.AdminPasswordHash != "" {
		private.Use(middleware.BasicAuth(cfg.AdminUser, cfg.AdminPasswordHash, c.hasher))
	} else {
		logging.GetLogger().Warn("[routes] OFFICE_ADMIN_PASSWORD_HASH not set: API is unauthenticated")
	}
	addClienteRoutes(private, c)
	addTrabajoRoutes(private, c)
	addPagoRoutes(private, c)
	addAgendaRoutes(private, c)
	addArchivoRoutes(private, c)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.GetLogger().WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(cfg))
}
