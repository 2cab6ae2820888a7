package repository

import (
	"context"
	"fmt"
	"sort"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTrabajosTableName        = "trabajos"
	defaultClienteTrabajosTableName = "cliente_trabajos"
)

type trabajoItem struct {
	ID                 string `dynamodbav:"id"`
	ClienteID          string `dynamodbav:"cliente_id"`
	Titulo             string `dynamodbav:"titulo"`
	Descripcion        string `dynamodbav:"descripcion,omitempty"`
	TipoTrabajoID      string `dynamodbav:"tipo_trabajo_id,omitempty"`
	CategoriaID        string `dynamodbav:"categoria_id,omitempty"`
	EstadoKanbanID     string `dynamodbav:"estado_kanban_id,omitempty"`
	Estado             string `dynamodbav:"estado"`
	PresupuestoInicial string `dynamodbav:"presupuesto_inicial"`
	CostoFinal         string `dynamodbav:"costo_final"`
	PagadoTotal        string `dynamodbav:"pagado_total"`
	SaldoPendiente     string `dynamodbav:"saldo_pendiente"`
	FechaInicio        string `dynamodbav:"fecha_inicio,omitempty"`
	FechaFinEstimada   string `dynamodbav:"fecha_fin_estimada,omitempty"`
	FechaFinReal       string `dynamodbav:"fecha_fin_real,omitempty"`
	Version            int64  `dynamodbav:"version"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// clienteTrabajoItem links a cliente to one of its trabajos. It lives in a
// base table so listing a cliente's trabajos can be a consistent read.
type clienteTrabajoItem struct {
	ClienteID string `dynamodbav:"cliente_id"`
	TrabajoID string `dynamodbav:"trabajo_id"`
}

// TrabajoDynamoRepository persists Trabajo entities in DynamoDB.
//
// Table requirements:
//   - trabajos: PK id (string)
//   - cliente_trabajos: PK cliente_id (string), SK trabajo_id (string)
type TrabajoDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	linksTable string
}

var _ interfaces.ITrabajoRepository = (*TrabajoDynamoRepository)(nil)

func NewTrabajoDynamoRepository(ddb DynamoAPI) *TrabajoDynamoRepository {
	return &TrabajoDynamoRepository{
		ddb:        ddb,
		tableName:  trabajosTable(),
		linksTable: clienteTrabajosTable(),
	}
}

func trabajosTable() string {
	return getenvDefault("TRABAJOS_TABLE", defaultTrabajosTableName)
}

func clienteTrabajosTable() string {
	return getenvDefault("CLIENTE_TRABAJOS_TABLE", defaultClienteTrabajosTableName)
}

// Create stores the trabajo and its cliente link in one transaction.
func (r *TrabajoDynamoRepository) Create(ctx context.Context, t entities.Trabajo) (entities.Trabajo, error) {
	puts, err := newTrabajoPuts(r.tableName, r.linksTable, t)
	if err != nil {
		return entities.Trabajo{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: puts})
	if isTransactionConditionFailed(err) {
		return entities.Trabajo{}, entities.ErrVersionConflict
	}
	if err != nil {
		return entities.Trabajo{}, err
	}
	return t, nil
}

// newTrabajoPuts returns the transaction items that insert t and its link.
func newTrabajoPuts(table, linksTable string, t entities.Trabajo) ([]types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toTrabajoItem(t))
	if err != nil {
		return nil, err
	}
	link, err := attributevalue.MarshalMap(clienteTrabajoItem{ClienteID: t.ClienteID, TrabajoID: t.ID})
	if err != nil {
		return nil, err
	}
	return []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(table),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		{Put: &types.Put{
			TableName: aws.String(linksTable),
			Item:      link,
		}},
	}, nil
}

func (r *TrabajoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Trabajo, error) {
	raw, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || len(raw) == 0 {
		return entities.Trabajo{}, err
	}
	var it trabajoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Trabajo{}, err
	}
	return fromTrabajoItem(it)
}

func (r *TrabajoDynamoRepository) List(ctx context.Context) ([]entities.Trabajo, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return decodeTrabajos(raws)
}

// ListByClienteID queries the cliente's links and reads every trabajo by
// key, all with strongly consistent reads.
func (r *TrabajoDynamoRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.Trabajo, error) {
	rawLinks, err := queryEquals(ctx, r.ddb, r.linksTable, "", "cliente_id", clienteID)
	if err != nil {
		return nil, err
	}
	var links []clienteTrabajoItem
	if err := attributevalue.UnmarshalListOfMaps(rawLinks, &links); err != nil {
		return nil, err
	}
	raws := make([]attrMap, 0, len(links))
	for _, l := range links {
		raw, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", l.TrabajoID))
		if err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			raws = append(raws, raw)
		}
	}
	return decodeTrabajos(raws)
}

func (r *TrabajoDynamoRepository) ReplaceAll(ctx context.Context, trabajos []entities.Trabajo) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return err
	}
	existingLinks, err := scanAll(ctx, r.ddb, r.linksTable)
	if err != nil {
		return err
	}
	avs := make([]attrMap, 0, len(trabajos))
	links := make([]attrMap, 0, len(trabajos))
	for _, t := range trabajos {
		av, err := attributevalue.MarshalMap(toTrabajoItem(t))
		if err != nil {
			return err
		}
		link, err := attributevalue.MarshalMap(clienteTrabajoItem{ClienteID: t.ClienteID, TrabajoID: t.ID})
		if err != nil {
			return err
		}
		avs = append(avs, av)
		links = append(links, link)
	}
	if err := replaceAll(ctx, r.ddb, r.tableName, []string{"id"}, existing, avs); err != nil {
		return err
	}
	return replaceAll(ctx, r.ddb, r.linksTable, []string{"cliente_id", "trabajo_id"}, existingLinks, links)
}

func decodeTrabajos(raws []attrMap) ([]entities.Trabajo, error) {
	var items []trabajoItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Trabajo, 0, len(items))
	for _, it := range items {
		v, err := fromTrabajoItem(it)
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

func toTrabajoItem(t entities.Trabajo) trabajoItem {
	return trabajoItem{
		ID:                 t.ID,
		ClienteID:          t.ClienteID,
		Titulo:             t.Titulo,
		Descripcion:        t.Descripcion,
		TipoTrabajoID:      t.TipoTrabajoID,
		CategoriaID:        t.CategoriaID,
		EstadoKanbanID:     t.EstadoKanbanID,
		Estado:             string(t.Estado),
		PresupuestoInicial: t.PresupuestoInicial.String(),
		CostoFinal:         t.CostoFinal.String(),
		PagadoTotal:        t.PagadoTotal.String(),
		SaldoPendiente:     t.SaldoPendiente.String(),
		FechaInicio:        formatTime(t.FechaInicio),
		FechaFinEstimada:   formatOptTime(t.FechaFinEstimada),
		FechaFinReal:       formatOptTime(t.FechaFinReal),
		Version:            t.Version,
		CreatedAt:          formatTime(t.CreatedAt),
		UpdatedAt:          formatTime(t.UpdatedAt),
	}
}

func fromTrabajoItem(it trabajoItem) (entities.Trabajo, error) {
	var d fieldDecoder
	t := entities.Trabajo{
		ID:                 it.ID,
		ClienteID:          it.ClienteID,
		Titulo:             it.Titulo,
		Descripcion:        it.Descripcion,
		TipoTrabajoID:      it.TipoTrabajoID,
		CategoriaID:        it.CategoriaID,
		EstadoKanbanID:     it.EstadoKanbanID,
		Estado:             entities.EstadoTrabajo(it.Estado),
		PresupuestoInicial: d.decimal("presupuesto_inicial", it.PresupuestoInicial),
		CostoFinal:         d.decimal("costo_final", it.CostoFinal),
		PagadoTotal:        d.decimal("pagado_total", it.PagadoTotal),
		SaldoPendiente:     d.decimal("saldo_pendiente", it.SaldoPendiente),
		FechaInicio:        d.time("fecha_inicio", it.FechaInicio),
		FechaFinEstimada:   d.optTime("fecha_fin_estimada", it.FechaFinEstimada),
		FechaFinReal:       d.optTime("fecha_fin_real", it.FechaFinReal),
		Version:            it.Version,
		CreatedAt:          d.time("created_at", it.CreatedAt),
		UpdatedAt:          d.time("updated_at", it.UpdatedAt),
	}
	if d.err != nil {
		return entities.Trabajo{}, fmt.Errorf("trabajo %s: %w", it.ID, d.err)
	}
	return t, nil
}
