package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

//go:generate mockgen -source=ledger_repository_interface.go -destination=mocks/mock_ledger_repository_interface.go -package=mock_interfaces

// LedgerWrite is one all-or-nothing unit of balance changes.
//
// Every entity carries its NEW version; the store only applies the unit when
// each stored version equals Version-1. A nil pointer means "untouched".
// CreateTrabajo and CreatePago must not exist yet.
type LedgerWrite struct {
	CreateTrabajo *entities.Trabajo
	Trabajo       *entities.Trabajo
	Item          *entities.Item
	Cliente       *entities.Cliente
	CreatePago    *entities.Pago
	DeletePagoID  string
}

// ILedgerRepository commits LedgerWrites atomically. A failed version check,
// an existing Trabajo or Pago to create or a missing Pago to delete yields entities.ErrVersionConflict and nothing is
// written.
type ILedgerRepository interface {
	Commit(ctx context.Context, w LedgerWrite) error
}
