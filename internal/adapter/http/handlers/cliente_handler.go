package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "gestion_oficina/internal/adapter/http/dto/request"
	response "gestion_oficina/internal/adapter/http/dto/response"
	"gestion_oficina/internal/usecase"
	"gestion_oficina/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ClienteHandler handles HTTP requests for clientes.
type ClienteHandler struct {
	usecase usecase.IClienteUseCase
	logger  logrus.FieldLogger
}

func NewClienteHandler(uc usecase.IClienteUseCase, logger logrus.FieldLogger) *ClienteHandler {
	return &ClienteHandler{usecase: uc, logger: logger}
}

// CreateCliente godoc
// @Summary      Create cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        cliente  body      request.ClienteRequest  true  "Cliente"
// @Success      201      {object}  response.ClienteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /clientes [post]
func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	log := h.logger.WithField("area", "cliente")
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithField("cliente_id", created.ID).Info("[cliente][handler] created")
	c.JSON(http.StatusCreated, response.FromCliente(created))
}

// ListClientes godoc
// @Summary      List clientes
// @Tags         clientes
// @Produce      json
// @Param        activo  query     bool    false  "Filter by active flag"
// @Param        q       query     string  false  "Search in nombre, identificacion, email"
// @Success      200     {array}   response.ClienteResponse
// @Security     BasicAuth
// @Router       /clientes [get]
func (h *ClienteHandler) ListClientes(c *gin.Context) {
	log := h.logger.WithField("area", "cliente")
	filter := usecase.ClienteFilter{Q: c.Query("q")}
	if raw := strings.TrimSpace(c.Query("activo")); raw != "" {
		activo, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, log, invalidQuery("activo", "must be true or false"))
			return
		}
		filter.Activo = &activo
	}

	clientes, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientes(clientes))
}

// GetCliente godoc
// @Summary      Get cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "Cliente ID"
// @Success      200  {object}  response.ClienteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /clientes/{id} [get]
func (h *ClienteHandler) GetCliente(c *gin.Context) {
	cliente, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

// UpdateCliente godoc
// @Summary      Update cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Cliente ID"
// @Param        cliente  body      request.ClienteRequest  true  "Cliente"
// @Success      200      {object}  response.ClienteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /clientes/{id} [put]
func (h *ClienteHandler) UpdateCliente(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "cliente", "cliente_id": c.Param("id")})
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCliente(updated))
}

// DeactivateCliente godoc
// @Summary      Deactivate cliente
// @Description  Rejected with 409 while the cliente has trabajos Pendiente or En proceso.
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "Cliente ID"
// @Success      200  {object}  response.ClienteResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /clientes/{id}/deactivate [patch]
func (h *ClienteHandler) DeactivateCliente(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "cliente", "cliente_id": c.Param("id")})
	cliente, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.Info("[cliente][handler] deactivated")
	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

// ActivateCliente godoc
// @Summary      Activate cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "Cliente ID"
// @Success      200  {object}  response.ClienteResponse
// @Security     BasicAuth
// @Router       /clientes/{id}/activate [patch]
func (h *ClienteHandler) ActivateCliente(c *gin.Context) {
	cliente, err := h.usecase.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

// CanDeactivateCliente godoc
// @Summary      Check whether a cliente can be deactivated
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "Cliente ID"
// @Success      200  {object}  response.CanDeactivateResponse
// @Security     BasicAuth
// @Router       /clientes/{id}/can-deactivate [get]
func (h *ClienteHandler) CanDeactivateCliente(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.usecase.CanDeactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.CanDeactivateResponse{ClienteID: id, CanDeactivate: ok})
}

// ListClienteTrabajos godoc
// @Summary      List the trabajos of a cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "Cliente ID"
// @Success      200  {array}   response.TrabajoResponse
// @Security     BasicAuth
// @Router       /clientes/{id}/trabajos [get]
func (h *ClienteHandler) ListClienteTrabajos(c *gin.Context) {
	trabajos, err := h.usecase.ListTrabajos(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrabajos(trabajos))
}

// RecalculateCliente godoc
// @Summary      Recompute deudaTotalActual from the cliente's trabajos
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "Cliente ID"
// @Success      200  {object}  response.ClienteResponse
// @Security     BasicAuth
// @Router       /clientes/{id}/recalculate [post]
func (h *ClienteHandler) RecalculateCliente(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "cliente", "cliente_id": c.Param("id")})
	cliente, err := h.usecase.Recalculate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithField("deuda", cliente.DeudaTotalActual.String()).Info("[cliente][handler] recalculated")
	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

func invalidQuery(param, details string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).
		WithDetails(map[string]string{param: details})
}
