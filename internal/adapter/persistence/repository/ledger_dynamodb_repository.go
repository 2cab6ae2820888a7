package repository

import (
	"context"
	"strconv"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LedgerDynamoRepository commits ledger units with TransactWriteItems so the
// trabajo, item, cliente and pago writes succeed or fail together.
type LedgerDynamoRepository struct {
	ddb           DynamoAPI
	trabajosTable string
	linksTable    string
	itemsTable    string
	clientesTable string
	pagosTable    string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb DynamoAPI) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:           ddb,
		trabajosTable: trabajosTable(),
		linksTable:    clienteTrabajosTable(),
		itemsTable:    itemsTable(),
		clientesTable: clientesTable(),
		pagosTable:    pagosTable(),
	}
}

func (r *LedgerDynamoRepository) Commit(ctx context.Context, w interfaces.LedgerWrite) error {
	in, err := r.buildTransaction(w)
	if err != nil {
		return err
	}
	if len(in.TransactItems) == 0 {
		return nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, in)
	if isTransactionConditionFailed(err) {
		return entities.ErrVersionConflict
	}
	return err
}

func (r *LedgerDynamoRepository) buildTransaction(w interfaces.LedgerWrite) (*dynamodb.TransactWriteItemsInput, error) {
	var items []types.TransactWriteItem

	if w.CreateTrabajo != nil {
		puts, err := newTrabajoPuts(r.trabajosTable, r.linksTable, *w.CreateTrabajo)
		if err != nil {
			return nil, err
		}
		items = append(items, puts...)
	}
	if w.Trabajo != nil {
		put, err := r.versionedPut(r.trabajosTable, toTrabajoItem(*w.Trabajo), w.Trabajo.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	if w.Item != nil {
		put, err := r.versionedPut(r.itemsTable, toItemItem(*w.Item), w.Item.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	if w.Cliente != nil {
		put, err := r.versionedPut(r.clientesTable, toClienteItem(*w.Cliente), w.Cliente.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	if w.CreatePago != nil {
		av, err := attributevalue.MarshalMap(toPagoItem(*w.CreatePago))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.pagosTable),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}
	if w.DeletePagoID != "" {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName:                aws.String(r.pagosTable),
			Key:                      stringKey("id", w.DeletePagoID),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}

	return &dynamodb.TransactWriteItemsInput{TransactItems: items}, nil
}

func (r *LedgerDynamoRepository) versionedPut(table string, item any, version int64) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("#version = :prev"),
		ExpressionAttributeNames: map[string]string{"#version": "version"},
		ExpressionAttributeValues: attrMap{
			":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(version-1, 10)},
		},
	}}, nil
}
