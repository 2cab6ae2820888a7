package repository

import (
	"context"
	"sort"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogosTableName = "catalogos"

type catalogoItem struct {
	Tipo   string `dynamodbav:"tipo"`
	ID     string `dynamodbav:"id"`
	Nombre string `dynamodbav:"nombre"`
	Color  string `dynamodbav:"color,omitempty"`
	Orden  int    `dynamodbav:"orden"`
	Activo bool   `dynamodbav:"activo"`
}

// CatalogoDynamoRepository keeps every catalog in one table.
//
// Table requirements:
//   - PK: tipo (string), SK: id (string)
type CatalogoDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICatalogoRepository = (*CatalogoDynamoRepository)(nil)

func NewCatalogoDynamoRepository(ddb DynamoAPI) *CatalogoDynamoRepository {
	return &CatalogoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOGOS_TABLE", defaultCatalogosTableName),
	}
}

func catalogoKey(tipo entities.TipoCatalogo, id string) attrMap {
	return attrMap{
		"tipo": &types.AttributeValueMemberS{Value: string(tipo)},
		"id":   &types.AttributeValueMemberS{Value: id},
	}
}

func (r *CatalogoDynamoRepository) Create(ctx context.Context, e entities.CatalogoEntry) (entities.CatalogoEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogoItem(e))
	if err != nil {
		return entities.CatalogoEntry{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.CatalogoEntry{}, err
	}
	return e, nil
}

func (r *CatalogoDynamoRepository) GetByID(ctx context.Context, tipo entities.TipoCatalogo, id string) (entities.CatalogoEntry, error) {
	raw, err := getByKey(ctx, r.ddb, r.tableName, catalogoKey(tipo, id))
	if err != nil || len(raw) == 0 {
		return entities.CatalogoEntry{}, err
	}
	var it catalogoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.CatalogoEntry{}, err
	}
	return fromCatalogoItem(it), nil
}

func (r *CatalogoDynamoRepository) ListByTipo(ctx context.Context, tipo entities.TipoCatalogo) ([]entities.CatalogoEntry, error) {
	raws, err := queryEquals(ctx, r.ddb, r.tableName, "", "tipo", string(tipo))
	if err != nil {
		return nil, err
	}
	var items []catalogoItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.CatalogoEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromCatalogoItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orden != out[j].Orden {
			return out[i].Orden < out[j].Orden
		}
		if out[i].Nombre != out[j].Nombre {
			return out[i].Nombre < out[j].Nombre
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CatalogoDynamoRepository) Delete(ctx context.Context, tipo entities.TipoCatalogo, id string) error {
	return deleteByKey(ctx, r.ddb, r.tableName, catalogoKey(tipo, id))
}

func (r *CatalogoDynamoRepository) ReplaceAll(ctx context.Context, tipo entities.TipoCatalogo, entries []entities.CatalogoEntry) error {
	existing, err := queryEquals(ctx, r.ddb, r.tableName, "", "tipo", string(tipo))
	if err != nil {
		return err
	}
	avs := make([]attrMap, 0, len(entries))
	for _, e := range entries {
		e.Tipo = tipo
		av, err := attributevalue.MarshalMap(toCatalogoItem(e))
		if err != nil {
			return err
		}
		avs = append(avs, av)
	}
	return replaceAll(ctx, r.ddb, r.tableName, []string{"tipo", "id"}, existing, avs)
}

func toCatalogoItem(e entities.CatalogoEntry) catalogoItem {
	return catalogoItem{
		Tipo:   string(e.Tipo),
		ID:     e.ID,
		Nombre: e.Nombre,
		Color:  e.Color,
		Orden:  e.Orden,
		Activo: e.Activo,
	}
}

func fromCatalogoItem(it catalogoItem) entities.CatalogoEntry {
	return entities.CatalogoEntry{
		ID:     it.ID,
		Tipo:   entities.TipoCatalogo(it.Tipo),
		Nombre: it.Nombre,
		Color:  it.Color,
		Orden:  it.Orden,
		Activo: it.Activo,
	}
}
