package handlers

import (
	"net/http"

	request "gestion_oficina/internal/adapter/http/dto/request"
	response "gestion_oficina/internal/adapter/http/dto/response"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TrabajoHandler serves trabajos and the items and pagos nested under them.
type TrabajoHandler struct {
	trabajos usecase.ITrabajoUseCase
	items    usecase.IItemUseCase
	pagos    usecase.IPagoUseCase
	logger   logrus.FieldLogger
}

func NewTrabajoHandler(trabajos usecase.ITrabajoUseCase, items usecase.IItemUseCase, pagos usecase.IPagoUseCase, logger logrus.FieldLogger) *TrabajoHandler {
	return &TrabajoHandler{trabajos: trabajos, items: items, pagos: pagos, logger: logger}
}

// CreateTrabajo godoc
// @Summary      Create trabajo
// @Description  saldoPendiente starts at costoFinal (presupuestoInicial when omitted) and is added to the cliente's debt.
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Param        trabajo  body      request.TrabajoRequest  true  "Trabajo"
// @Success      201      {object}  response.TrabajoResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /trabajos [post]
func (h *TrabajoHandler) CreateTrabajo(c *gin.Context) {
	log := h.logger.WithField("area", "trabajo")
	var payload request.TrabajoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}

	created, err := h.trabajos.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithFields(logrus.Fields{"trabajo_id": created.ID, "cliente_id": created.ClienteID}).Info("[trabajo][handler] created")
	c.JSON(http.StatusCreated, response.FromTrabajo(created))
}

// ListTrabajos godoc
// @Summary      List trabajos
// @Tags         trabajos
// @Produce      json
// @Param        clienteId  query     string  false  "Cliente ID"
// @Param        estado     query     string  false  "Estado"
// @Success      200        {array}   response.TrabajoResponse
// @Security     BasicAuth
// @Router       /trabajos [get]
func (h *TrabajoHandler) ListTrabajos(c *gin.Context) {
	filter := usecase.TrabajoFilter{
		ClienteID: c.Query("clienteId"),
		Estado:    entities.EstadoTrabajo(c.Query("estado")),
	}
	trabajos, err := h.trabajos.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrabajos(trabajos))
}

// GetTrabajo godoc
// @Summary      Get trabajo with its items and pagos
// @Tags         trabajos
// @Produce      json
// @Param        id   path      string  true  "Trabajo ID"
// @Success      200  {object}  response.TrabajoDetalleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /trabajos/{id} [get]
func (h *TrabajoHandler) GetTrabajo(c *gin.Context) {
	detalle, err := h.trabajos.GetDetalle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrabajoDetalle(detalle))
}

// UpdateTrabajo godoc
// @Summary      Update trabajo
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Trabajo ID"
// @Param        trabajo  body      request.TrabajoRequest  true  "Trabajo"
// @Success      200      {object}  response.TrabajoResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /trabajos/{id} [put]
func (h *TrabajoHandler) UpdateTrabajo(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "trabajo", "trabajo_id": c.Param("id")})
	var payload request.TrabajoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}

	updated, err := h.trabajos.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrabajo(updated))
}

// ChangeTrabajoEstado godoc
// @Summary      Change trabajo estado
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Trabajo ID"
// @Param        estado  body      request.EstadoRequest  true  "Estado"
// @Success      200     {object}  response.TrabajoResponse
// @Security     BasicAuth
// @Router       /trabajos/{id}/estado [patch]
func (h *TrabajoHandler) ChangeTrabajoEstado(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "trabajo", "trabajo_id": c.Param("id")})
	var payload request.EstadoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}

	updated, err := h.trabajos.ChangeEstado(c.Request.Context(), c.Param("id"), entities.EstadoTrabajo(payload.Estado))
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithField("estado", updated.Estado).Info("[trabajo][handler] estado changed")
	c.JSON(http.StatusOK, response.FromTrabajo(updated))
}

// ListTrabajoItems godoc
// @Summary      List the items of a trabajo ordered by orden
// @Tags         trabajos
// @Produce      json
// @Param        id   path      string  true  "Trabajo ID"
// @Success      200  {array}   response.ItemResponse
// @Security     BasicAuth
// @Router       /trabajos/{id}/items [get]
func (h *TrabajoHandler) ListTrabajoItems(c *gin.Context) {
	items, err := h.items.ListByTrabajo(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

// CreateTrabajoItem godoc
// @Summary      Add an item to a trabajo
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Trabajo ID"
// @Param        item  body      request.ItemRequest  true  "Item"
// @Success      201   {object}  response.ItemResponse
// @Security     BasicAuth
// @Router       /trabajos/{id}/items [post]
func (h *TrabajoHandler) CreateTrabajoItem(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "item", "trabajo_id": c.Param("id")})
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}

	created, err := h.items.Create(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromItem(created))
}

// ListTrabajoPagos godoc
// @Summary      List the pagos of a trabajo
// @Tags         trabajos
// @Produce      json
// @Param        id   path      string  true  "Trabajo ID"
// @Success      200  {array}   response.PagoResponse
// @Security     BasicAuth
// @Router       /trabajos/{id}/pagos [get]
func (h *TrabajoHandler) ListTrabajoPagos(c *gin.Context) {
	pagos, err := h.pagos.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPagos(pagos))
}
