package repository

import (
	"context"
	"fmt"
	"sort"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultClientesTableName = "clientes"

type clienteItem struct {
	ID               string `dynamodbav:"id"`
	Nombre           string `dynamodbav:"nombre"`
	Identificacion   string `dynamodbav:"identificacion,omitempty"`
	Email            string `dynamodbav:"email,omitempty"`
	Telefono         string `dynamodbav:"telefono,omitempty"`
	Direccion        string `dynamodbav:"direccion,omitempty"`
	TipoClienteID    string `dynamodbav:"tipo_cliente_id,omitempty"`
	Notas            string `dynamodbav:"notas,omitempty"`
	Activo           bool   `dynamodbav:"activo"`
	DeudaTotalActual string `dynamodbav:"deuda_total_actual"`
	Version          int64  `dynamodbav:"version"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ClienteDynamoRepository persists Cliente entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ClienteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb DynamoAPI) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: clientesTable(),
	}
}

func clientesTable() string {
	return getenvDefault("CLIENTES_TABLE", defaultClientesTableName)
}

func (r *ClienteDynamoRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	raw, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || len(raw) == 0 {
		return entities.Cliente{}, err
	}
	var it clienteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it)
}

func (r *ClienteDynamoRepository) List(ctx context.Context) ([]entities.Cliente, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var items []clienteItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Cliente, 0, len(items))
	for _, it := range items {
		v, err := fromClienteItem(it)
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

func (r *ClienteDynamoRepository) Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, c.Version); err != nil {
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) ReplaceAll(ctx context.Context, clientes []entities.Cliente) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return err
	}
	avs := make([]attrMap, 0, len(clientes))
	for _, c := range clientes {
		av, err := attributevalue.MarshalMap(toClienteItem(c))
		if err != nil {
			return err
		}
		avs = append(avs, av)
	}
	return replaceAll(ctx, r.ddb, r.tableName, []string{"id"}, existing, avs)
}

func toClienteItem(c entities.Cliente) clienteItem {
	return clienteItem{
		ID:               c.ID,
		Nombre:           c.Nombre,
		Identificacion:   c.Identificacion,
		Email:            c.Email,
		Telefono:         c.Telefono,
		Direccion:        c.Direccion,
		TipoClienteID:    c.TipoClienteID,
		Notas:            c.Notas,
		Activo:           c.Activo,
		DeudaTotalActual: c.DeudaTotalActual.String(),
		Version:          c.Version,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromClienteItem(it clienteItem) (entities.Cliente, error) {
	var d fieldDecoder
	c := entities.Cliente{
		ID:               it.ID,
		Nombre:           it.Nombre,
		Identificacion:   it.Identificacion,
		Email:            it.Email,
		Telefono:         it.Telefono,
		Direccion:        it.Direccion,
		TipoClienteID:    it.TipoClienteID,
		Notas:            it.Notas,
		Activo:           it.Activo,
		DeudaTotalActual: d.decimal("deuda_total_actual", it.DeudaTotalActual),
		Version:          it.Version,
		CreatedAt:        d.time("created_at", it.CreatedAt),
		UpdatedAt:        d.time("updated_at", it.UpdatedAt),
	}
	if d.err != nil {
		return entities.Cliente{}, fmt.Errorf("cliente %s: %w", it.ID, d.err)
	}
	return c, nil
}
