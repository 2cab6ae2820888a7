package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo records calls and answers with canned results. Unused methods
// panic through the nil embedded interface.
type fakeDynamo struct {
	DynamoAPI

	transactInput *dynamodb.TransactWriteItemsInput
	transactErr   error

	updateErr error

	batchCalls  []*dynamodb.BatchWriteItemInput
	unprocessed int

	queries  []*dynamodb.QueryInput
	queryOut []attrMap
	gets     []*dynamodb.GetItemInput
	rows     map[string]attrMap
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryOut}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.rows[id]}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactInput = in
	return &dynamodb.TransactWriteItemsOutput{}, f.transactErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, _ *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, f.updateErr
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batchCalls = append(f.batchCalls, in)
	out := &dynamodb.BatchWriteItemOutput{}
	if f.unprocessed > 0 {
		for table, reqs := range in.RequestItems {
			n := f.unprocessed
			if n > len(reqs) {
				n = len(reqs)
			}
			out.UnprocessedItems = map[string][]types.WriteRequest{table: reqs[:n]}
		}
		f.unprocessed = 0
	}
	return out, nil
}

func TestLedgerDynamoRepository_Commit(t *testing.T) {
	ctx := context.Background()
	tr := entities.Trabajo{ID: "t1", ClienteID: "c1", Version: 3, CostoFinal: decimal.NewFromInt(100)}
	c := entities.Cliente{ID: "c1", Version: 8}
	pago := entities.Pago{ID: "p1", TrabajoID: "t1", Monto: decimal.RequireFromString("25.50")}

	t.Run("builds one conditioned transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewLedgerDynamoRepository(fake)
		if err := repo.Commit(ctx, interfaces.LedgerWrite{Trabajo: &tr, Cliente: &c, CreatePago: &pago}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := fake.transactInput.TransactItems
		if len(items) != 3 {
			t.Fatalf("expected 3 transact items, got %d", len(items))
		}
		prev := items[0].Put.ExpressionAttributeValues[":prev"].(*types.AttributeValueMemberN)
		if prev.Value != "2" {
			t.Fatalf("expected trabajo condition on version 2, got %s", prev.Value)
		}
		if aws.ToString(items[2].Put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("pago insert must be conditioned on absence")
		}
	})

	t.Run("new trabajo is inserted with its cliente link", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewLedgerDynamoRepository(fake)
		created := entities.Trabajo{ID: "t2", ClienteID: "c1", Version: 1}
		if err := repo.Commit(ctx, interfaces.LedgerWrite{CreateTrabajo: &created, Cliente: &c}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := fake.transactInput.TransactItems
		if len(items) != 3 {
			t.Fatalf("expected trabajo, link and cliente, got %d items", len(items))
		}
		if aws.ToString(items[0].Put.TableName) != "trabajos" || aws.ToString(items[0].Put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("trabajo insert must be conditioned on absence, got %+v", items[0].Put)
		}
		if aws.ToString(items[1].Put.TableName) != "cliente_trabajos" {
			t.Fatalf("expected cliente link put, got %s", aws.ToString(items[1].Put.TableName))
		}
		if aws.ToString(items[2].Put.TableName) != "clientes" {
			t.Fatalf("expected cliente put, got %s", aws.ToString(items[2].Put.TableName))
		}
	})

	t.Run("conditional cancellation maps to version conflict", func(t *testing.T) {
		fake := &fakeDynamo{transactErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}}
		repo := NewLedgerDynamoRepository(fake)
		err := repo.Commit(ctx, interfaces.LedgerWrite{Trabajo: &tr, DeletePagoID: "p1"})
		if !errors.Is(err, entities.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
		if fake.transactInput.TransactItems[1].Delete == nil {
			t.Fatalf("expected delete of pago in transaction")
		}
	})

	t.Run("empty unit is a no-op", func(t *testing.T) {
		fake := &fakeDynamo{}
		if err := NewLedgerDynamoRepository(fake).Commit(ctx, interfaces.LedgerWrite{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.transactInput != nil {
			t.Fatalf("no transaction expected")
		}
	})
}

func TestEventoDynamoRepository_MarkReminderShown(t *testing.T) {
	ctx := context.Background()

	flipped, err := NewEventoDynamoRepository(&fakeDynamo{}).MarkReminderShown(ctx, "e1")
	if err != nil || !flipped {
		t.Fatalf("expected flip, got %v %v", flipped, err)
	}

	fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
	flipped, err = NewEventoDynamoRepository(fake).MarkReminderShown(ctx, "e1")
	if err != nil || flipped {
		t.Fatalf("expected already-shown to report false, got %v %v", flipped, err)
	}
}

func TestBatchWrite_ChunksAndRetriesUnprocessed(t *testing.T) {
	fake := &fakeDynamo{unprocessed: 2}
	reqs := make([]types.WriteRequest, 30)
	for i := range reqs {
		reqs[i] = types.WriteRequest{PutRequest: &types.PutRequest{Item: stringKey("id", time.Duration(i).String())}}
	}
	if err := batchWrite(context.Background(), fake, "t", reqs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 25 + retry of 2 unprocessed + 5
	if len(fake.batchCalls) != 3 {
		t.Fatalf("expected 3 batch calls, got %d", len(fake.batchCalls))
	}
	if got := len(fake.batchCalls[1].RequestItems["t"]); got != 2 {
		t.Fatalf("expected retry of 2 requests, got %d", got)
	}
}

func TestTrabajoItemConversion(t *testing.T) {
	due := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	in := entities.Trabajo{
		ID:               "t1",
		CostoFinal:       decimal.RequireFromString("1200.10"),
		PagadoTotal:      decimal.RequireFromString("200"),
		SaldoPendiente:   decimal.RequireFromString("1000.10"),
		Estado:           entities.EstadoTrabajoEnProceso,
		FechaFinEstimada: &due,
		Version:          4,
	}
	out, err := fromTrabajoItem(toTrabajoItem(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.SaldoPendiente.Equal(in.SaldoPendiente) || out.Estado != in.Estado || out.Version != 4 {
		t.Fatalf("unexpected conversion %+v", out)
	}
	if out.FechaFinEstimada == nil || !out.FechaFinEstimada.Equal(due) {
		t.Fatalf("due date lost: %v", out.FechaFinEstimada)
	}
	if out.FechaFinReal != nil {
		t.Fatalf("nil date must stay nil")
	}
}

func TestTrabajoItemConversion_CorruptValues(t *testing.T) {
	cases := []struct {
		name  string
		field string
		edit  func(*trabajoItem)
	}{
		{"decimal", "saldo_pendiente", func(it *trabajoItem) { it.SaldoPendiente = "12,50" }},
		{"time", "created_at", func(it *trabajoItem) { it.CreatedAt = "yesterday" }},
		{"optional time", "fecha_fin_estimada", func(it *trabajoItem) { it.FechaFinEstimada = "2024-13-45" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := toTrabajoItem(entities.Trabajo{ID: "t1", Version: 1})
			tc.edit(&it)
			_, err := fromTrabajoItem(it)
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected error naming %s, got %v", tc.field, err)
			}
		})
	}
}

func TestPagoDynamoRepository_GetByIDRejectsCorruptRow(t *testing.T) {
	fake := &fakeDynamo{rows: map[string]attrMap{
		"p1": {
			"id":    &types.AttributeValueMemberS{Value: "p1"},
			"monto": &types.AttributeValueMemberS{Value: "not-a-number"},
		},
	}}
	if _, err := NewPagoDynamoRepository(fake).GetByID(context.Background(), "p1"); err == nil {
		t.Fatalf("expected corrupt monto to fail")
	}
}

func TestTrabajoDynamoRepository_ListByClienteIDIsConsistent(t *testing.T) {
	ctx := context.Background()
	stored := func(id string, saldo int64) attrMap {
		av, err := attributevalue.MarshalMap(toTrabajoItem(entities.Trabajo{ID: id, ClienteID: "c1", SaldoPendiente: decimal.NewFromInt(saldo), Version: 1}))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return av
	}
	link := func(id string) attrMap {
		return attrMap{
			"cliente_id": &types.AttributeValueMemberS{Value: "c1"},
			"trabajo_id": &types.AttributeValueMemberS{Value: id},
		}
	}
	fake := &fakeDynamo{
		queryOut: []attrMap{link("t1"), link("t2"), link("gone")},
		rows:     map[string]attrMap{"t1": stored("t1", 100), "t2": stored("t2", 50)},
	}

	got, err := NewTrabajoDynamoRepository(fake).ListByClienteID(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 trabajos, got %d", len(got))
	}
	if len(fake.queries) != 1 {
		t.Fatalf("expected one query, got %d", len(fake.queries))
	}
	q := fake.queries[0]
	if q.IndexName != nil || !aws.ToBool(q.ConsistentRead) || aws.ToString(q.TableName) != "cliente_trabajos" {
		t.Fatalf("expected consistent base-table query, got index=%v consistent=%v table=%s", q.IndexName, aws.ToBool(q.ConsistentRead), aws.ToString(q.TableName))
	}
	for _, g := range fake.gets {
		if !aws.ToBool(g.ConsistentRead) {
			t.Fatalf("expected consistent GetItem")
		}
	}
}
