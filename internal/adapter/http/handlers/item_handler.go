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

type ItemHandler struct {
	usecase usecase.IItemUseCase
	logger  logrus.FieldLogger
}

func NewItemHandler(uc usecase.IItemUseCase, logger logrus.FieldLogger) *ItemHandler {
	return &ItemHandler{usecase: uc, logger: logger}
}

// UpdateItem godoc
// @Summary      Update item
// @Description  A new costoTotal is propagated to the trabajo and cliente balances.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Item ID"
// @Param        item  body      request.ItemRequest  true  "Item"
// @Success      200   {object}  response.ItemResponse
// @Security     BasicAuth
// @Router       /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "item", "item_id": c.Param("id")})
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

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(updated))
}

// ChangeItemEstado godoc
// @Summary      Change item estado
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Item ID"
// @Param        estado  body      request.EstadoRequest  true  "Estado"
// @Success      200     {object}  response.ItemResponse
// @Security     BasicAuth
// @Router       /items/{id}/estado [patch]
func (h *ItemHandler) ChangeItemEstado(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "item", "item_id": c.Param("id")})
	var payload request.EstadoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}

	updated, err := h.usecase.ChangeEstado(c.Request.Context(), c.Param("id"), entities.EstadoItem(payload.Estado))
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(updated))
}

// DeleteItem godoc
// @Summary      Delete item
// @Description  Items with pagos cannot be deleted.
// @Tags         items
// @Param        id   path  string  true  "Item ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "item", "item_id": c.Param("id")})
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.Info("[item][handler] deleted")
	c.Status(http.StatusNoContent)
}
