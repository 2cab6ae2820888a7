package handlers

import (
	"fmt"
	"net/http"
	"strings"

	request "gestion_oficina/internal/adapter/http/dto/request"
	response "gestion_oficina/internal/adapter/http/dto/response"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DocumentoHandler struct {
	usecase usecase.IDocumentoUseCase
	logger  logrus.FieldLogger
}

func NewDocumentoHandler(uc usecase.IDocumentoUseCase, logger logrus.FieldLogger) *DocumentoHandler {
	return &DocumentoHandler{usecase: uc, logger: logger}
}

// UploadDocumento godoc
// @Summary      Upload documento
// @Description  archivoBase64 may be plain base64 or a data URL. The document must reference a cliente or a trabajo.
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        documento  body      request.DocumentoRequest  true  "Documento"
// @Success      201        {object}  response.DocumentoResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      413        {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /documentos [post]
func (h *DocumentoHandler) UploadDocumento(c *gin.Context) {
	log := h.logger.WithField("area", "documento")
	var payload request.DocumentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}

	created, err := h.usecase.Upload(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	log.WithFields(logrus.Fields{"documento_id": created.ID, "tamano": created.Tamano}).Info("[documento][handler] uploaded")
	c.JSON(http.StatusCreated, response.FromDocumento(created))
}

// ListDocumentos godoc
// @Summary      List documentos
// @Tags         documentos
// @Produce      json
// @Param        clienteId  query     string  false  "Cliente ID"
// @Param        trabajoId  query     string  false  "Trabajo ID"
// @Success      200        {array}   response.DocumentoResponse
// @Security     BasicAuth
// @Router       /documentos [get]
func (h *DocumentoHandler) ListDocumentos(c *gin.Context) {
	filter := usecase.DocumentoFilter{ClienteID: c.Query("clienteId"), TrabajoID: c.Query("trabajoId")}
	docs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentos(docs))
}

// GetDocumento godoc
// @Summary      Get documento metadata
// @Tags         documentos
// @Produce      json
// @Param        id   path      string  true  "Documento ID"
// @Success      200  {object}  response.DocumentoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /documentos/{id} [get]
func (h *DocumentoHandler) GetDocumento(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumento(doc))
}

// DownloadDocumento godoc
// @Summary      Download documento content
// @Tags         documentos
// @Produce      octet-stream
// @Param        id   path      string  true  "Documento ID"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /documentos/{id}/archivo [get]
func (h *DocumentoHandler) DownloadDocumento(c *gin.Context) {
	doc, data, err := h.usecase.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	mime := doc.TipoMime
	if mime == "" {
		mime = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, strings.ReplaceAll(doc.Nombre, `"`, "")))
	c.Data(http.StatusOK, mime, data)
}

// DeleteDocumento godoc
// @Summary      Delete documento
// @Tags         documentos
// @Param        id   path  string  true  "Documento ID"
// @Success      204
// @Security     BasicAuth
// @Router       /documentos/{id} [delete]
func (h *DocumentoHandler) DeleteDocumento(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
