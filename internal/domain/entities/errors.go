package entities

import (
	"errors"
	"fmt"
)

// Error categories. Every domain error wraps exactly one of them so adapters can
// map failures without knowing each individual sentinel.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrStateConflict = errors.New("state conflict")
)

var (
	ErrClienteNotFound   = fmt.Errorf("cliente %w", ErrNotFound)
	ErrTrabajoNotFound   = fmt.Errorf("trabajo %w", ErrNotFound)
	ErrItemNotFound      = fmt.Errorf("item %w", ErrNotFound)
	ErrPagoNotFound      = fmt.Errorf("pago %w", ErrNotFound)
	ErrEventoNotFound    = fmt.Errorf("evento %w", ErrNotFound)
	ErrDocumentoNotFound = fmt.Errorf("documento %w", ErrNotFound)
	ErrCatalogoNotFound  = fmt.Errorf("catalogo entry %w", ErrNotFound)

	// ErrVersionConflict is returned by repositories when an optimistic
	// concurrency check fails.
	ErrVersionConflict          = fmt.Errorf("version mismatch: %w", ErrStateConflict)
	ErrClienteHasActiveTrabajos = fmt.Errorf("cliente has active trabajos: %w", ErrStateConflict)
	ErrClienteInactive          = fmt.Errorf("cliente is inactive: %w", ErrStateConflict)
	ErrPagoAlreadyReversed      = fmt.Errorf("pago no longer exists: %w", ErrStateConflict)
	ErrTrabajoCancelado         = fmt.Errorf("trabajo is cancelled: %w", ErrStateConflict)
	ErrItemHasPagos             = fmt.Errorf("item has pagos: %w", ErrStateConflict)
	ErrLedgerContention         = fmt.Errorf("ledger update kept conflicting: %w", ErrStateConflict)
	ErrPagoNotApproved          = fmt.Errorf("payment not approved by provider: %w", ErrStateConflict)
	ErrImportNotConfirmed       = fmt.Errorf("import requires confirmation: %w", ErrValidation)
	ErrUnsupportedBackupVersion = fmt.Errorf("unsupported backup version: %w", ErrValidation)
	ErrItemNotInTrabajo         = fmt.Errorf("item does not belong to trabajo: %w", ErrValidation)
	ErrInvalidMonto             = fmt.Errorf("invalid monto: %w", ErrValidation)
	ErrInvalidID                = fmt.Errorf("invalid id: %w", ErrValidation)
	ErrDocumentoTooLarge        = fmt.Errorf("documento exceeds size limit: %w", ErrValidation)
	ErrUnknownCatalogo          = fmt.Errorf("unknown catalogo: %w", ErrValidation)
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field   string
	Details string
	Err     error
}

// NewValidationError builds a field error wrapping ErrValidation.
func NewValidationError(field, details string) *ValidationError {
	return &ValidationError{Field: field, Details: details, Err: ErrValidation}
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Err.Error(), e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
