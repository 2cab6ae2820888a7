package handlers

import (
	"net/http"

	request "gestion_oficina/internal/adapter/http/dto/request"
	response "gestion_oficina/internal/adapter/http/dto/response"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PagoHandler handles HTTP requests for pagos.
type PagoHandler struct {
	usecase usecase.IPagoUseCase
	logger  logrus.FieldLogger
}

func NewPagoHandler(uc usecase.IPagoUseCase, logger logrus.FieldLogger) *PagoHandler {
	return &PagoHandler{usecase: uc, logger: logger}
}

// CreatePago godoc
// @Summary      Register pago
// @Description  Applies the pago to the trabajo (and item) balances and the cliente debt in one unit.
// @Description  metodoPago "mercadopago" charges mp_payload first; only approved charges are recorded.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        pago  body      request.PagoRequest  true  "Pago"
// @Success      201   {object}  response.PagoResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /pagos [post]
func (h *PagoHandler) CreatePago(c *gin.Context) {
	log := h.logger.WithField("area", "pago")
	var payload request.PagoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}

	log = log.WithFields(logrus.Fields{"trabajo_id": in.TrabajoID, "metodo": in.MetodoPago})
	log.Info("[pago][handler] create start")
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithField("pago_id", created.ID).Info("[pago][handler] create success")
	c.JSON(http.StatusCreated, response.FromPago(created))
}

// ListPagos godoc
// @Summary      List pagos of a trabajo
// @Tags         pagos
// @Produce      json
// @Param        trabajoId  query     string  true  "Trabajo ID"
// @Success      200        {array}   response.PagoResponse
// @Security     BasicAuth
// @Router       /pagos [get]
func (h *PagoHandler) ListPagos(c *gin.Context) {
	pagos, err := h.usecase.List(c.Request.Context(), c.Query("trabajoId"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPagos(pagos))
}

// GetPago godoc
// @Summary      Get pago
// @Tags         pagos
// @Produce      json
// @Param        id   path      string  true  "Pago ID"
// @Success      200  {object}  response.PagoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /pagos/{id} [get]
func (h *PagoHandler) GetPago(c *gin.Context) {
	pago, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPago(pago))
}

// DeletePago godoc
// @Summary      Reverse pago
// @Description  Deleting a pago restores the balances it had reduced. A second delete returns 409.
// @Tags         pagos
// @Produce      json
// @Param        id   path      string  true  "Pago ID"
// @Success      200  {object}  response.PagoResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /pagos/{id} [delete]
func (h *PagoHandler) DeletePago(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "pago", "pago_id": c.Param("id")})
	removed, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithField("monto", removed.Monto.String()).Info("[pago][handler] reversed")
	c.JSON(http.StatusOK, response.FromPago(removed))
}
