package handlers

import (
	"net/http"
	"strconv"
	"strings"

	response "gestion_oficina/internal/adapter/http/dto/response"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// maxHorizonte is the largest accepted ?horizonte=.
const maxHorizonte = 365

// VencimientoHandler serves the due-date triage and the dashboard summary.
type VencimientoHandler struct {
	triage    usecase.IDueDateTriageUseCase
	dashboard usecase.IDashboardUseCase
	horizon   int
	logger    logrus.FieldLogger
}

// NewVencimientoHandler uses defaultHorizon when the request has no
// horizonte.
func NewVencimientoHandler(triage usecase.IDueDateTriageUseCase, dashboard usecase.IDashboardUseCase, defaultHorizon int, logger logrus.FieldLogger) *VencimientoHandler {
	if defaultHorizon <= 0 {
		defaultHorizon = usecase.DefaultTriageHorizonDays
	}
	return &VencimientoHandler{triage: triage, dashboard: dashboard, horizon: defaultHorizon, logger: logger}
}

// ListVencimientos godoc
// @Summary      Due-date triage
// @Description  Open trabajos and items with a due date up to horizonte days ahead, split into vencidos, urgentes and proximos.
// @Tags         vencimientos
// @Produce      json
// @Param        horizonte  query     int  false  "Days ahead (default 7)"
// @Success      200        {object}  response.VencimientosResponse
// @Failure      400        {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /vencimientos [get]
func (h *VencimientoHandler) ListVencimientos(c *gin.Context) {
	horizonte := h.horizon
	if raw := strings.TrimSpace(c.Query("horizonte")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHorizonte {
			respondError(c, h.logger, invalidQuery("horizonte", "must be an integer between 1 and "+strconv.Itoa(maxHorizonte)))
			return
		}
		horizonte = n
	}

	resumen, err := h.triage.Vencimientos(c.Request.Context(), horizonte)
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVencimientos(horizonte, resumen))
}

// GetDashboard godoc
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Security     BasicAuth
// @Router       /dashboard [get]
func (h *VencimientoHandler) GetDashboard(c *gin.Context) {
	resumen, err := h.dashboard.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(resumen))
}
