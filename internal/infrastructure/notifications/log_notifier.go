package notifications

import (
	"context"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// LogNotifier delivers reminders as structured log lines. It is the default
// when no Pub/Sub topic is configured.
type LogNotifier struct {
	logger *logrus.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Remind(_ context.Context, evento entities.Evento) error {
	n.logger.WithFields(logrus.Fields{
		"evento_id":    evento.ID,
		"titulo":       evento.Titulo,
		"fecha_evento": evento.FechaEvento,
		"trabajo_id":   evento.TrabajoID,
		"horas_antes":  evento.RecordatorioHorasAntes,
	}).Warn("[reminder][notifier] recordatorio")
	return nil
}
