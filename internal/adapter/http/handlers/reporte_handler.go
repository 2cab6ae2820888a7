package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReporteHandler struct {
	usecase usecase.IReportUseCase
	logger  logrus.FieldLogger
}

func NewReporteHandler(uc usecase.IReportUseCase, logger logrus.FieldLogger) *ReporteHandler {
	return &ReporteHandler{usecase: uc, logger: logger}
}

// VencimientosReport godoc
// @Summary      Vencimientos workbook
// @Tags         reportes
// @Produce      octet-stream
// @Param        horizonte  query  int  false  "Days ahead (default 7)"
// @Success      200        {file}  file
// @Security     BasicAuth
// @Router       /reportes/vencimientos.xlsx [get]
func (h *ReporteHandler) VencimientosReport(c *gin.Context) {
	horizonte := 0
	if raw := strings.TrimSpace(c.Query("horizonte")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHorizonte {
			respondError(c, h.logger, invalidQuery("horizonte", "must be an integer between 1 and "+strconv.Itoa(maxHorizonte)))
			return
		}
		horizonte = n
	}
	data, err := h.usecase.VencimientosWorkbook(c.Request.Context(), horizonte)
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	sendWorkbook(c, "vencimientos.xlsx", data)
}

// DeudasReport godoc
// @Summary      Outstanding debt per cliente workbook
// @Tags         reportes
// @Produce      octet-stream
// @Success      200  {file}  file
// @Security     BasicAuth
// @Router       /reportes/deudas.xlsx [get]
func (h *ReporteHandler) DeudasReport(c *gin.Context) {
	data, err := h.usecase.DeudasWorkbook(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	sendWorkbook(c, "deudas.xlsx", data)
}

func sendWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
