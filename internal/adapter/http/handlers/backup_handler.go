package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BackupHandler struct {
	usecase usecase.IBackupUseCase
	logger  logrus.FieldLogger
}

func NewBackupHandler(uc usecase.IBackupUseCase, logger logrus.FieldLogger) *BackupHandler {
	return &BackupHandler{usecase: uc, logger: logger}
}

// ExportBackup godoc
// @Summary      Export all data as JSON
// @Description  Documento contents (archivoBase64) are not included.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  entities.Backup
// @Security     BasicAuth
// @Router       /backup [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	b, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	filename := fmt.Sprintf("backup-%s.json", b.Timestamp.UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.JSON(http.StatusOK, b)
}

// ImportBackup godoc
// @Summary      Replace all data with a backup
// @Description  Destructive. Requires confirm=true; the document is validated as a whole before anything is written.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        confirm  query     bool             true  "Must be true"
// @Param        backup   body      entities.Backup  true  "Backup document"
// @Success      204
// @Failure      400      {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /backup/import [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	log := h.logger.WithField("area", "backup")
	confirm, _ := strconv.ParseBool(c.Query("confirm"))

	var b entities.Backup
	if err := c.ShouldBindJSON(&b); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}
	if err := h.usecase.Import(c.Request.Context(), b, confirm); err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithFields(logrus.Fields{"clientes": len(b.Clientes), "trabajos": len(b.Trabajos)}).Warn("[backup][handler] data replaced from backup")
	c.Status(http.StatusNoContent)
}
