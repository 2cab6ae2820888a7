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
	defaultItemsTableName = "items"
	itemsTrabajoIDIndex   = "trabajo_id-index"
)

type itemItem struct {
	ID               string `dynamodbav:"id"`
	TrabajoID        string `dynamodbav:"trabajo_id"`
	Titulo           string `dynamodbav:"titulo"`
	Descripcion      string `dynamodbav:"descripcion,omitempty"`
	Orden            int    `dynamodbav:"orden"`
	Estado           string `dynamodbav:"estado"`
	CostoTotal       string `dynamodbav:"costo_total"`
	Pagado           string `dynamodbav:"pagado"`
	Saldo            string `dynamodbav:"saldo"`
	FechaFinEstimada string `dynamodbav:"fecha_fin_estimada,omitempty"`
	Version          int64  `dynamodbav:"version"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ItemDynamoRepository persists Item entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: trabajo_id-index (PK: trabajo_id)
type ItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb DynamoAPI) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: itemsTable(),
	}
}

func itemsTable() string {
	return getenvDefault("ITEMS_TABLE", defaultItemsTableName)
}

func (r *ItemDynamoRepository) Create(ctx context.Context, it entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(it))
	if err != nil {
		return entities.Item{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Item{}, err
	}
	return it, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	raw, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || len(raw) == 0 {
		return entities.Item{}, err
	}
	var it itemItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it)
}

func (r *ItemDynamoRepository) List(ctx context.Context) ([]entities.Item, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return decodeItems(raws)
}

func (r *ItemDynamoRepository) ListByTrabajoID(ctx context.Context, trabajoID string) ([]entities.Item, error) {
	raws, err := queryEquals(ctx, r.ddb, r.tableName, itemsTrabajoIDIndex, "trabajo_id", trabajoID)
	if err != nil {
		return nil, err
	}
	out, err := decodeItems(raws)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *ItemDynamoRepository) Update(ctx context.Context, it entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(it))
	if err != nil {
		return entities.Item{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, it.Version); err != nil {
		return entities.Item{}, err
	}
	return it, nil
}

func (r *ItemDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
}

func (r *ItemDynamoRepository) ReplaceAll(ctx context.Context, items []entities.Item) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return err
	}
	avs := make([]attrMap, 0, len(items))
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toItemItem(it))
		if err != nil {
			return err
		}
		avs = append(avs, av)
	}
	return replaceAll(ctx, r.ddb, r.tableName, []string{"id"}, existing, avs)
}

func decodeItems(raws []attrMap) ([]entities.Item, error) {
	var items []itemItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Item, 0, len(items))
	for _, it := range items {
		v, err := fromItemItem(it)
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

func toItemItem(it entities.Item) itemItem {
	return itemItem{
		ID:               it.ID,
		TrabajoID:        it.TrabajoID,
		Titulo:           it.Titulo,
		Descripcion:      it.Descripcion,
		Orden:            it.Orden,
		Estado:           string(it.Estado),
		CostoTotal:       it.CostoTotal.String(),
		Pagado:           it.Pagado.String(),
		Saldo:            it.Saldo.String(),
		FechaFinEstimada: formatOptTime(it.FechaFinEstimada),
		Version:          it.Version,
		CreatedAt:        formatTime(it.CreatedAt),
		UpdatedAt:        formatTime(it.UpdatedAt),
	}
}

func fromItemItem(it itemItem) (entities.Item, error) {
	var d fieldDecoder
	i := entities.Item{
		ID:               it.ID,
		TrabajoID:        it.TrabajoID,
		Titulo:           it.Titulo,
		Descripcion:      it.Descripcion,
		Orden:            it.Orden,
		Estado:           entities.EstadoItem(it.Estado),
		CostoTotal:       d.decimal("costo_total", it.CostoTotal),
		Pagado:           d.decimal("pagado", it.Pagado),
		Saldo:            d.decimal("saldo", it.Saldo),
		FechaFinEstimada: d.optTime("fecha_fin_estimada", it.FechaFinEstimada),
		Version:          it.Version,
		CreatedAt:        d.time("created_at", it.CreatedAt),
		UpdatedAt:        d.time("updated_at", it.UpdatedAt),
	}
	if d.err != nil {
		return entities.Item{}, fmt.Errorf("item %s: %w", it.ID, d.err)
	}
	return i, nil
}
