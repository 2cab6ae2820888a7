package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/mock_notifier_interface.go -package=mock_interfaces

// INotifier delivers "remind me about this evento" side effects. A nil error
// means the reminder was handed over for delivery.
type INotifier interface {
	Remind(ctx context.Context, evento entities.Evento) error
}
