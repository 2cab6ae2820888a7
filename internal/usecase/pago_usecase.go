package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidMPPayload               = fmt.Errorf("invalid mercado pago payload: %w", entities.ErrValidation)
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = fmt.Errorf("payment gateway bad request: %w", entities.ErrValidation)
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = fmt.Errorf("payment gateway invalid users involved: %w", entities.ErrValidation)
	ErrPaymentGatewayCustomerNotFound = fmt.Errorf("payment gateway customer not found: %w", entities.ErrValidation)
)

type PagoInput struct {
	TrabajoID  string
	ItemID     string
	Monto      decimal.Decimal
	Fecha      time.Time
	MetodoPago entities.MetodoPago
	Referencia string
	Notas      string
	// ProviderPayload is the Mercado Pago payment request for metodo
	// "mercadopago" (payment_method_id, token, payer...).
	ProviderPayload json.RawMessage
}

// PagoGatewayOptions tune how Mercado Pago payloads are completed.
type PagoGatewayOptions struct {
	MockMode        bool
	SandboxMode     bool
	TestPayerEmail  string
	TestPayerUserID string
}

type IPagoUseCase interface {
	Create(ctx context.Context, in PagoInput) (entities.Pago, error)
	Delete(ctx context.Context, id string) (entities.Pago, error)
	GetByID(ctx context.Context, id string) (entities.Pago, error)
	List(ctx context.Context, trabajoID string) ([]entities.Pago, error)
}

type PagoUseCase struct {
	repo     interfaces.IPagoRepository
	trabajos interfaces.ITrabajoRepository
	ledger   ILedgerEngine
	gateway  interfaces.IPaymentGateway
	opts     PagoGatewayOptions
	logger   logrus.FieldLogger
}

var _ IPagoUseCase = (*PagoUseCase)(nil)

func NewPagoUseCase(repo interfaces.IPagoRepository, trabajos interfaces.ITrabajoRepository, ledger ILedgerEngine, gateway interfaces.IPaymentGateway, opts PagoGatewayOptions, logger logrus.FieldLogger) *PagoUseCase {
	return &PagoUseCase{repo: repo, trabajos: trabajos, ledger: ledger, gateway: gateway, opts: opts, logger: logger}
}

// Create registers a pago through the ledger. Mercado Pago pagos are checked
// against the trabajo, then charged, and only an approved charge is recorded.
func (u *PagoUseCase) Create(ctx context.Context, in PagoInput) (entities.Pago, error) {
	in.TrabajoID = strings.TrimSpace(in.TrabajoID)
	log := u.logger.WithFields(logrus.Fields{"trabajo_id": in.TrabajoID, "metodo": in.MetodoPago})
	log.Info("[pago][usecase] create start")

	if in.TrabajoID == "" {
		return entities.Pago{}, ErrInvalidTrabajoID
	}
	if !in.Monto.IsPositive() {
		return entities.Pago{}, entities.ErrInvalidMonto
	}
	if !in.MetodoPago.Valid() {
		return entities.Pago{}, entities.NewValidationError("metodoPago", "unknown metodo")
	}

	p := entities.Pago{
		TrabajoID:  in.TrabajoID,
		ItemID:     strings.TrimSpace(in.ItemID),
		Monto:      in.Monto,
		Fecha:      in.Fecha,
		MetodoPago: in.MetodoPago,
		Referencia: strings.TrimSpace(in.Referencia),
		Notas:      in.Notas,
	}

	if in.MetodoPago == entities.MetodoPagoMercadoPago {
		if u.gateway == nil {
			return entities.Pago{}, ErrPaymentGatewayNotConfigured
		}
		if err := u.ledger.ValidatePago(ctx, p.TrabajoID, p.ItemID); err != nil {
			log.WithError(err).Warn("[pago][usecase] pago rejected before charge")
			return entities.Pago{}, err
		}
		id, status, err := u.charge(ctx, in)
		if err != nil {
			log.WithError(err).Warn("[pago][usecase] payment gateway failed")
			return entities.Pago{}, err
		}
		p.ProviderPaymentID, p.ProviderStatus = id, status
		if p.Referencia == "" {
			p.Referencia = id
		}
		if status != "approved" {
			log.WithFields(logrus.Fields{"provider_payment_id": id, "provider_status": status}).Warn("[pago][usecase] payment not approved")
			return entities.Pago{}, entities.ErrPagoNotApproved
		}
	}

	created, err := u.ledger.RegisterPago(ctx, p)
	if err != nil {
		if p.ProviderPaymentID != "" {
			log.WithError(err).WithField("provider_payment_id", p.ProviderPaymentID).Error("[pago][usecase] approved charge not recorded")
			return entities.Pago{}, fmt.Errorf("mercado pago payment %s approved but not recorded: %w", p.ProviderPaymentID, err)
		}
		log.WithError(err).Warn("[pago][usecase] ledger rejected pago")
		return entities.Pago{}, err
	}
	log.WithField("pago_id", created.ID).Info("[pago][usecase] create success")
	return created, nil
}

func (u *PagoUseCase) Delete(ctx context.Context, id string) (entities.Pago, error) {
	return u.ledger.RemovePago(ctx, id)
}

func (u *PagoUseCase) GetByID(ctx context.Context, id string) (entities.Pago, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pago{}, entities.ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pago{}, err
	}
	if p.ID == "" {
		return entities.Pago{}, entities.ErrPagoNotFound
	}
	return p, nil
}

// List returns every pago, or the trabajo's pagos when trabajoID is given.
func (u *PagoUseCase) List(ctx context.Context, trabajoID string) ([]entities.Pago, error) {
	trabajoID = strings.TrimSpace(trabajoID)
	if trabajoID == "" {
		return u.repo.List(ctx)
	}
	t, err := u.trabajos.GetByID(ctx, trabajoID)
	if err != nil {
		return nil, err
	}
	if t.ID == "" {
		return nil, entities.ErrTrabajoNotFound
	}
	return u.repo.ListByTrabajoID(ctx, trabajoID)
}

func (u *PagoUseCase) charge(ctx context.Context, in PagoInput) (string, string, error) {
	if u.gateway == nil {
		return "", "", ErrPaymentGatewayNotConfigured
	}
	payload := in.ProviderPayload
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.opts.MockMode {
			return "", "", ErrInvalidMPPayload
		}
		payload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return "", "", ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return "", "", ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return "", "", ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = in.TrabajoID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Trabajo %s", in.TrabajoID)
	}
	// The amount charged is always the pago's monto.
	reqMap["transaction_amount"] = in.Monto.InexactFloat64()

	b, err := json.Marshal(reqMap)
	if err != nil {
		return "", "", err
	}
	id, status, _, err := u.gateway.CreatePayment(ctx, b)
	if err != nil {
		switch {
		case isGatewayCustomerNotFound(err):
			return "", "", ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return "", "", ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return "", "", ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return "", "", ErrPaymentGatewayBadRequest
		}
		return "", "", err
	}
	return id, status, nil
}

func (u *PagoUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// Sandbox accepts either payer.id or payer.email; fill the email only
	// when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.opts.SandboxMode {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox expects.
func (u *PagoUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.SandboxMode || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", `"code":2002`)
}
