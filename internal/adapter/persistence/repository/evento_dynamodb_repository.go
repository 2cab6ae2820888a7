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

const defaultEventosTableName = "eventos"

type eventoItem struct {
	ID                     string `dynamodbav:"id"`
	Titulo                 string `dynamodbav:"titulo"`
	Descripcion            string `dynamodbav:"descripcion,omitempty"`
	FechaEvento            string `dynamodbav:"fecha_evento"`
	Tipo                   string `dynamodbav:"tipo"`
	Origen                 string `dynamodbav:"origen"`
	TrabajoID              string `dynamodbav:"trabajo_id,omitempty"`
	ClienteID              string `dynamodbav:"cliente_id,omitempty"`
	RecordatorioHorasAntes int    `dynamodbav:"recordatorio_horas_antes"`
	RecordatorioMostrado   bool   `dynamodbav:"recordatorio_mostrado"`
	Version                int64  `dynamodbav:"version"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// EventoDynamoRepository persists Evento entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type EventoDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEventoRepository = (*EventoDynamoRepository)(nil)

func NewEventoDynamoRepository(ddb DynamoAPI) *EventoDynamoRepository {
	return &EventoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENTOS_TABLE", defaultEventosTableName),
	}
}

func (r *EventoDynamoRepository) Create(ctx context.Context, e entities.Evento) (entities.Evento, error) {
	av, err := attributevalue.MarshalMap(toEventoItem(e))
	if err != nil {
		return entities.Evento{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Evento{}, err
	}
	return e, nil
}

func (r *EventoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Evento, error) {
	raw, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || len(raw) == 0 {
		return entities.Evento{}, err
	}
	var it eventoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Evento{}, err
	}
	return fromEventoItem(it)
}

func (r *EventoDynamoRepository) List(ctx context.Context) ([]entities.Evento, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var items []eventoItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Evento, 0, len(items))
	for _, it := range items {
		v, err := fromEventoItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].FechaEvento.Equal(out[j].FechaEvento) {
			return out[i].FechaEvento.Before(out[j].FechaEvento)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *EventoDynamoRepository) Update(ctx context.Context, e entities.Evento) (entities.Evento, error) {
	av, err := attributevalue.MarshalMap(toEventoItem(e))
	if err != nil {
		return entities.Evento{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, e.Version); err != nil {
		return entities.Evento{}, err
	}
	return e, nil
}

func (r *EventoDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
}

// MarkReminderShown is a conditional update, so two schedulers racing on the
// same evento flip it once.
func (r *EventoDynamoRepository) MarkReminderShown(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #shown = :false"),
		UpdateExpression:    aws.String("SET #shown = :true, #version = #version + :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#shown":   "recordatorio_mostrado",
			"#version": "version",
		},
		ExpressionAttributeValues: attrMap{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":one":   &types.AttributeValueMemberN{Value: "1"},
		},
	})
	if isConditionalCheckFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *EventoDynamoRepository) ReplaceAll(ctx context.Context, eventos []entities.Evento) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return err
	}
	avs := make([]attrMap, 0, len(eventos))
	for _, e := range eventos {
		av, err := attributevalue.MarshalMap(toEventoItem(e))
		if err != nil {
			return err
		}
		avs = append(avs, av)
	}
	return replaceAll(ctx, r.ddb, r.tableName, []string{"id"}, existing, avs)
}

func toEventoItem(e entities.Evento) eventoItem {
	return eventoItem{
		ID:                     e.ID,
		Titulo:                 e.Titulo,
		Descripcion:            e.Descripcion,
		FechaEvento:            formatTime(e.FechaEvento),
		Tipo:                   string(e.Tipo),
		Origen:                 string(e.Origen),
		TrabajoID:              e.TrabajoID,
		ClienteID:              e.ClienteID,
		RecordatorioHorasAntes: e.RecordatorioHorasAntes,
		RecordatorioMostrado:   e.RecordatorioMostrado,
		Version:                e.Version,
		CreatedAt:              formatTime(e.CreatedAt),
		UpdatedAt:              formatTime(e.UpdatedAt),
	}
}

func fromEventoItem(it eventoItem) (entities.Evento, error) {
	var d fieldDecoder
	e := entities.Evento{
		ID:                     it.ID,
		Titulo:                 it.Titulo,
		Descripcion:            it.Descripcion,
		FechaEvento:            d.time("fecha_evento", it.FechaEvento),
		Tipo:                   entities.TipoEvento(it.Tipo),
		Origen:                 entities.OrigenEvento(it.Origen),
		TrabajoID:              it.TrabajoID,
		ClienteID:              it.ClienteID,
		RecordatorioHorasAntes: it.RecordatorioHorasAntes,
		RecordatorioMostrado:   it.RecordatorioMostrado,
		Version:                it.Version,
		CreatedAt:              d.time("created_at", it.CreatedAt),
		UpdatedAt:              d.time("updated_at", it.UpdatedAt),
	}
	if d.err != nil {
		return entities.Evento{}, fmt.Errorf("evento %s: %w", it.ID, d.err)
	}
	return e, nil
}
