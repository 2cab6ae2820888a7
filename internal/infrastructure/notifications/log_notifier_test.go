package notifications

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"gestion_oficina/internal/domain/entities"

	"github.com/sirupsen/logrus"
)

func TestLogNotifier_Remind(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	n := NewLogNotifier(logger)
	err := n.Remind(context.Background(), entities.Evento{ID: "ev-1", Titulo: "Audiencia", FechaEvento: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"evento_id":"ev-1"`) {
		t.Fatalf("expected evento id in log line, got %s", buf.String())
	}
}
