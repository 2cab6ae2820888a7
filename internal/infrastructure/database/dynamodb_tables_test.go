package database

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCreateTableInput_WithIndex(t *testing.T) {
	in := createTableInput(TableSpec{Name: "items", HashKey: "id", Secondary: map[string]string{"trabajo_id-index": "trabajo_id"}})

	if aws.ToString(in.TableName) != "items" {
		t.Fatalf("unexpected table name %q", aws.ToString(in.TableName))
	}
	if in.BillingMode != types.BillingModePayPerRequest {
		t.Fatalf("expected on-demand billing")
	}
	if len(in.AttributeDefinitions) != 2 {
		t.Fatalf("expected id and trabajo_id attributes, got %d", len(in.AttributeDefinitions))
	}
	if len(in.GlobalSecondaryIndexes) != 1 || aws.ToString(in.GlobalSecondaryIndexes[0].IndexName) != "trabajo_id-index" {
		t.Fatalf("unexpected indexes %+v", in.GlobalSecondaryIndexes)
	}
}

func TestCreateTableInput_CompositeKey(t *testing.T) {
	in := createTableInput(TableSpec{Name: "catalogos", HashKey: "tipo", RangeKey: "id"})

	if len(in.KeySchema) != 2 || in.KeySchema[1].KeyType != types.KeyTypeRange {
		t.Fatalf("expected hash+range key schema, got %+v", in.KeySchema)
	}
	if in.GlobalSecondaryIndexes != nil {
		t.Fatalf("expected no indexes")
	}
}

func TestOfficeTables_HonourOverrides(t *testing.T) {
	t.Setenv("PAGOS_TABLE", "pagos-test")
	found := false
	for _, spec := range OfficeTables() {
		if spec.Name == "pagos-test" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected PAGOS_TABLE override to be used")
	}
}

func TestOfficeTables_ClienteTrabajosIsBaseTable(t *testing.T) {
	for _, spec := range OfficeTables() {
		if spec.Name != "cliente_trabajos" {
			continue
		}
		if spec.HashKey != "cliente_id" || spec.RangeKey != "trabajo_id" || len(spec.Secondary) != 0 {
			t.Fatalf("unexpected cliente_trabajos spec %+v", spec)
		}
		return
	}
	t.Fatalf("expected a cliente_trabajos table")
}
