package usecase

import (
	"context"
	"strings"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/pkg/clock"

	ics "github.com/arran4/golang-ical"
)

const (
	icsProdID        = "-//gestion_oficina//calendario//ES"
	icsEventDuration = time.Hour
)

type ICalendarExportUseCase interface {
	Export(ctx context.Context, mes string) ([]byte, error)
}

type CalendarExport struct {
	eventos IEventoUseCase
	clock   clock.Clock
}

var _ ICalendarExportUseCase = (*CalendarExport)(nil)

func NewCalendarExport(eventos IEventoUseCase, clk clock.Clock) *CalendarExport {
	return &CalendarExport{eventos: eventos, clock: clk}
}

func (u *CalendarExport) Export(ctx context.Context, mes string) ([]byte, error) {
	eventos, err := u.eventos.List(ctx, mes)
	if err != nil {
		return nil, err
	}
	return RenderICS(eventos, u.clock.Now()), nil
}

// RenderICS writes an RFC 5545 VCALENDAR with one VEVENT per evento.
func RenderICS(eventos []entities.Evento, stamp time.Time) []byte {
	cal := ics.NewCalendar()
	cal.SetProductId(icsProdID)
	cal.SetMethod(ics.MethodPublish)
	for _, e := range eventos {
		start := e.FechaEvento.UTC()
		ev := cal.AddEvent(e.ID + "@gestion_oficina")
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(icsEventDuration))
		ev.SetSummary(icsText(e.Titulo))
		if e.Descripcion != "" {
			ev.SetDescription(icsText(e.Descripcion))
		}
		ev.SetProperty(ics.ComponentPropertyCategories, string(e.Tipo))
	}
	return []byte(cal.Serialize())
}

// icsText replaces invalid UTF-8 so folding always splits on rune boundaries.
func icsText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
