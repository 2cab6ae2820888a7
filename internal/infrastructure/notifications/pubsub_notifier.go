package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

const publishTimeout = 30 * time.Second

// ReminderMessage is the Pub/Sub payload consumed by push/e-mail workers.
type ReminderMessage struct {
	EventoID               string    `json:"evento_id"`
	Titulo                 string    `json:"titulo"`
	Descripcion            string    `json:"descripcion,omitempty"`
	FechaEvento            time.Time `json:"fecha_evento"`
	TrabajoID              string    `json:"trabajo_id,omitempty"`
	ClienteID              string    `json:"cliente_id,omitempty"`
	RecordatorioHorasAntes int       `json:"recordatorio_horas_antes"`
}

// PubSubNotifier publishes reminders to a Google Cloud Pub/Sub topic. Remind
// only returns nil once the server acknowledged the message.
type PubSubNotifier struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

var _ interfaces.INotifier = (*PubSubNotifier)(nil)

// NewPubSubNotifier uses Application Default Credentials unless credJSON is
// given.
func NewPubSubNotifier(ctx context.Context, projectID, topicID, credJSON string) (*PubSubNotifier, error) {
	if projectID == "" {
		return nil, errors.New("PUBSUB_PROJECT_ID/GOOGLE_CLOUD_PROJECT not set")
	}
	if topicID == "" {
		return nil, errors.New("PUBSUB_TOPIC is required")
	}

	var opts []option.ClientOption
	if credJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	}
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, err
	}
	return &PubSubNotifier{client: client, topic: client.Topic(topicID)}, nil
}

func (n *PubSubNotifier) Remind(ctx context.Context, evento entities.Evento) error {
	data, err := json.Marshal(ReminderMessage{
		EventoID:               evento.ID,
		Titulo:                 evento.Titulo,
		Descripcion:            evento.Descripcion,
		FechaEvento:            evento.FechaEvento.UTC(),
		TrabajoID:              evento.TrabajoID,
		ClienteID:              evento.ClienteID,
		RecordatorioHorasAntes: evento.RecordatorioHorasAntes,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	result := n.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"type": "evento.recordatorio", "evento_id": evento.ID},
	})
	_, err = result.Get(ctx)
	return err
}

func (n *PubSubNotifier) Close() error {
	n.topic.Stop()
	return n.client.Close()
}
