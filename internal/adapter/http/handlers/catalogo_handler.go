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

// CatalogoHandler serves the lookup lists (tiposCliente, tiposTrabajo,
// categorias, estadosKanban).
type CatalogoHandler struct {
	usecase usecase.ICatalogoUseCase
	logger  logrus.FieldLogger
}

func NewCatalogoHandler(uc usecase.ICatalogoUseCase, logger logrus.FieldLogger) *CatalogoHandler {
	return &CatalogoHandler{usecase: uc, logger: logger}
}

// ListCatalogo godoc
// @Summary      List catalogo entries
// @Tags         catalogos
// @Produce      json
// @Param        tipo  path      string  true  "tiposCliente, tiposTrabajo, categorias or estadosKanban"
// @Success      200   {array}   response.CatalogoResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /catalogos/{tipo} [get]
func (h *CatalogoHandler) ListCatalogo(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context(), entities.TipoCatalogo(c.Param("tipo")))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogos(entries))
}

// CreateCatalogoEntry godoc
// @Summary      Add catalogo entry
// @Tags         catalogos
// @Accept       json
// @Produce      json
// @Param        tipo   path      string                   true  "Catalogo"
// @Param        entry  body      request.CatalogoRequest  true  "Entry"
// @Success      201    {object}  response.CatalogoResponse
// @Security     BasicAuth
// @Router       /catalogos/{tipo} [post]
func (h *CatalogoHandler) CreateCatalogoEntry(c *gin.Context) {
	var payload request.CatalogoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, mapBindingError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), entities.TipoCatalogo(c.Param("tipo")), payload.ToInput())
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogo(created))
}

// DeleteCatalogoEntry godoc
// @Summary      Delete catalogo entry
// @Tags         catalogos
// @Param        tipo  path  string  true  "Catalogo"
// @Param        id    path  string  true  "Entry ID"
// @Success      204
// @Security     BasicAuth
// @Router       /catalogos/{tipo}/{id} [delete]
func (h *CatalogoHandler) DeleteCatalogoEntry(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), entities.TipoCatalogo(c.Param("tipo")), c.Param("id")); err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
