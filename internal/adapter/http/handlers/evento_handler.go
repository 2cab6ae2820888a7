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

const calendarContentType = "text/calendar; charset=utf-8"

// EventoHandler handles the calendar: eventos CRUD and the iCalendar export.
type EventoHandler struct {
	usecase  usecase.IEventoUseCase
	calendar usecase.ICalendarExportUseCase
	logger   logrus.FieldLogger
}

func NewEventoHandler(uc usecase.IEventoUseCase, calendar usecase.ICalendarExportUseCase, logger logrus.FieldLogger) *EventoHandler {
	return &EventoHandler{usecase: uc, calendar: calendar, logger: logger}
}

// CreateEvento godoc
// @Summary      Create evento
// @Description  recordatorioHorasAntes defaults to 24; 0 disables the reminder.
// @Tags         eventos
// @Accept       json
// @Produce      json
// @Param        evento  body      request.EventoRequest  true  "Evento"
// @Success      201     {object}  response.EventoResponse
// @Failure      400     {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /eventos [post]
func (h *EventoHandler) CreateEvento(c *gin.Context) {
	log := h.logger.WithField("area", "evento")
	var payload request.EventoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, log, mapBindingError(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, log, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEvento(created))
}

// ListEventos godoc
// @Summary      List eventos
// @Tags         eventos
// @Produce      json
// @Param        mes  query     string  false  "Month filter, YYYY-MM"
// @Success      200  {array}   response.EventoResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /eventos [get]
func (h *EventoHandler) ListEventos(c *gin.Context) {
	eventos, err := h.usecase.List(c.Request.Context(), c.Query("mes"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEventos(eventos))
}

// GetEvento godoc
// @Summary      Get evento
// @Tags         eventos
// @Produce      json
// @Param        id   path      string  true  "Evento ID"
// @Success      200  {object}  response.EventoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /eventos/{id} [get]
func (h *EventoHandler) GetEvento(c *gin.Context) {
	evento, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvento(evento))
}

// UpdateEvento godoc
// @Summary      Update evento
// @Description  Moving fechaEvento or changing recordatorioHorasAntes re-arms the reminder.
// @Tags         eventos
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Evento ID"
// @Param        evento  body      request.EventoRequest  true  "Evento"
// @Success      200     {object}  response.EventoResponse
// @Security     BasicAuth
// @Router       /eventos/{id} [put]
func (h *EventoHandler) UpdateEvento(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"area": "evento", "evento_id": c.Param("id")})
	var payload request.EventoRequest
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
	c.JSON(http.StatusOK, response.FromEvento(updated))
}

// DeleteEvento godoc
// @Summary      Delete evento
// @Tags         eventos
// @Param        id   path  string  true  "Evento ID"
// @Success      204
// @Security     BasicAuth
// @Router       /eventos/{id} [delete]
func (h *EventoHandler) DeleteEvento(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportCalendar godoc
// @Summary      Export eventos as iCalendar
// @Tags         eventos
// @Produce      text/calendar
// @Param        mes  query     string  false  "Month filter, YYYY-MM"
// @Success      200  {file}    file
// @Failure      400  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /eventos/export.ics [get]
func (h *EventoHandler) ExportCalendar(c *gin.Context) {
	mes := strings.TrimSpace(c.Query("mes"))
	ics, err := h.calendar.Export(c.Request.Context(), mes)
	if err != nil {
		respondError(c, h.logger, mapDomainError(err))
		return
	}

	filename := "calendario.ics"
	if mes != "" {
		filename = fmt.Sprintf("calendario-%s.ics", mes)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, calendarContentType, ics)
}
