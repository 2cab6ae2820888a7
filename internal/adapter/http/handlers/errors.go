package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"
	"gestion_oficina/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// mapDomainError turns a use case error into the HTTP envelope. Specific
// sentinels get their own code; anything else falls back to its category.
func mapDomainError(err error) *pkg.AppError {
	var vErr *entities.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest).
			WithDetails(map[string]string{vErr.Field: vErr.Details})

	case errors.Is(err, entities.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrTrabajoNotFound):
		return pkg.NewDomainErrorSimple("TRABAJO_NOT_FOUND", "Trabajo not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrPagoNotFound):
		return pkg.NewDomainErrorSimple("PAGO_NOT_FOUND", "Pago not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEventoNotFound):
		return pkg.NewDomainErrorSimple("EVENTO_NOT_FOUND", "Evento not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrDocumentoNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENTO_NOT_FOUND", "Documento not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCatalogoNotFound):
		return pkg.NewDomainErrorSimple("CATALOGO_NOT_FOUND", "Catalogo entry not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrImportNotConfirmed):
		return pkg.NewDomainErrorSimple("IMPORT_NOT_CONFIRMED", "Import replaces all data and must be confirmed with confirm=true", http.StatusBadRequest)
	case errors.Is(err, entities.ErrDocumentoTooLarge):
		return pkg.NewDomainErrorSimple("DOCUMENTO_TOO_LARGE", "Documento exceeds the size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest)

	case errors.Is(err, entities.ErrClienteHasActiveTrabajos):
		return pkg.NewDomainErrorSimple("CLIENTE_HAS_ACTIVE_TRABAJOS", "Cliente has active trabajos", http.StatusConflict)
	case errors.Is(err, entities.ErrClienteInactive):
		return pkg.NewDomainErrorSimple("CLIENTE_INACTIVE", "Cliente is inactive", http.StatusConflict)
	case errors.Is(err, entities.ErrTrabajoCancelado):
		return pkg.NewDomainErrorSimple("TRABAJO_CANCELADO", "Trabajo is cancelled", http.StatusConflict)
	case errors.Is(err, entities.ErrItemHasPagos):
		return pkg.NewDomainErrorSimple("ITEM_HAS_PAGOS", "Item has pagos", http.StatusConflict)
	case errors.Is(err, entities.ErrPagoAlreadyReversed):
		return pkg.NewDomainErrorSimple("PAGO_ALREADY_REVERSED", "Pago was already reversed", http.StatusConflict)
	case errors.Is(err, entities.ErrPagoNotApproved):
		return pkg.NewDomainErrorSimple("PAGO_NOT_APPROVED", "Payment was not approved by the provider", http.StatusConflict)
	case errors.Is(err, entities.ErrLedgerContention), errors.Is(err, entities.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The record was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Operation not allowed in the current state", http.StatusConflict)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapBindingError reports request decoding failures, one detail per field
// when the validator produced them.
func mapBindingError(err error) *pkg.AppError {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = describeFieldError(fe)
		}
		return appErr.WithDetails(details)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return appErr.WithDetails(map[string]string{typeErr.Field: "must be a " + typeErr.Type.String()})
	}
	return appErr
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

func respondError(c *gin.Context, log logrus.FieldLogger, appErr *pkg.AppError) {
	entry := log.WithFields(logrus.Fields{"code": appErr.Code, "status": appErr.HTTPStatus})
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		entry.WithError(appErr.Err).Error("request failed")
	} else {
		entry.Info("request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
