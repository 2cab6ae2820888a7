package repository

import (
	"context"
	"fmt"
	"sort"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const (
	defaultPagosTableName = "pagos"
	pagosTrabajoIDIndex   = "trabajo_id-index"
)

type pagoItem struct {
	ID                string `dynamodbav:"id"`
	TrabajoID         string `dynamodbav:"trabajo_id"`
	ItemID            string `dynamodbav:"item_id,omitempty"`
	ClienteID         string `dynamodbav:"cliente_id"`
	Monto             string `dynamodbav:"monto"`
	Fecha             string `dynamodbav:"fecha"`
	MetodoPago        string `dynamodbav:"metodo_pago"`
	Referencia        string `dynamodbav:"referencia,omitempty"`
	Notas             string `dynamodbav:"notas,omitempty"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus    string `dynamodbav:"provider_status,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// PagoDynamoRepository reads Pago entities from DynamoDB. Inserts and deletes
// happen inside LedgerDynamoRepository transactions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: trabajo_id-index (PK: trabajo_id)
type PagoDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPagoRepository = (*PagoDynamoRepository)(nil)

func NewPagoDynamoRepository(ddb DynamoAPI) *PagoDynamoRepository {
	return &PagoDynamoRepository{
		ddb:       ddb,
		tableName: pagosTable(),
	}
}

func pagosTable() string {
	return getenvDefault("PAGOS_TABLE", defaultPagosTableName)
}

func (r *PagoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pago, error) {
	raw, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || len(raw) == 0 {
		return entities.Pago{}, err
	}
	var it pagoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Pago{}, err
	}
	return fromPagoItem(it)
}

func (r *PagoDynamoRepository) List(ctx context.Context) ([]entities.Pago, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return decodePagos(raws)
}

func (r *PagoDynamoRepository) ListByTrabajoID(ctx context.Context, trabajoID string) ([]entities.Pago, error) {
	raws, err := queryEquals(ctx, r.ddb, r.tableName, pagosTrabajoIDIndex, "trabajo_id", trabajoID)
	if err != nil {
		return nil, err
	}
	return decodePagos(raws)
}

func (r *PagoDynamoRepository) ReplaceAll(ctx context.Context, pagos []entities.Pago) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return err
	}
	avs := make([]attrMap, 0, len(pagos))
	for _, p := range pagos {
		av, err := attributevalue.MarshalMap(toPagoItem(p))
		if err != nil {
			return err
		}
		avs = append(avs, av)
	}
	return replaceAll(ctx, r.ddb, r.tableName, []string{"id"}, existing, avs)
}

func decodePagos(raws []attrMap) ([]entities.Pago, error) {
	var items []pagoItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Pago, 0, len(items))
	for _, it := range items {
		v, err := fromPagoItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func toPagoItem(p entities.Pago) pagoItem {
	return pagoItem{
		ID:                p.ID,
		TrabajoID:         p.TrabajoID,
		ItemID:            p.ItemID,
		ClienteID:         p.ClienteID,
		Monto:             p.Monto.String(),
		Fecha:             formatTime(p.Fecha),
		MetodoPago:        string(p.MetodoPago),
		Referencia:        p.Referencia,
		Notas:             p.Notas,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		CreatedAt:         formatTime(p.CreatedAt),
	}
}

func fromPagoItem(it pagoItem) (entities.Pago, error) {
	var d fieldDecoder
	p := entities.Pago{
		ID:                it.ID,
		TrabajoID:         it.TrabajoID,
		ItemID:            it.ItemID,
		ClienteID:         it.ClienteID,
		Monto:             d.decimal("monto", it.Monto),
		Fecha:             d.time("fecha", it.Fecha),
		MetodoPago:        entities.MetodoPago(it.MetodoPago),
		Referencia:        it.Referencia,
		Notas:             it.Notas,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
		CreatedAt:         d.time("created_at", it.CreatedAt),
	}
	if d.err != nil {
		return entities.Pago{}, fmt.Errorf("pago %s: %w", it.ID, d.err)
	}
	return p, nil
}
