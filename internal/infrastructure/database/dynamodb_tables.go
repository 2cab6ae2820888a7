package database

import (
	"context"
	"errors"

	"gestion_oficina/internal/infrastructure/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableSpec describes one table and its optional single-attribute GSIs.
type TableSpec struct {
	Name      string
	HashKey   string
	RangeKey  string
	Secondary map[string]string // index name -> partition attribute
}

// OfficeTables lists every table the repositories expect. Names honour the
// same *_TABLE overrides the repositories read.
func OfficeTables() []TableSpec {
	return []TableSpec{
		{Name: getenvDefault("CLIENTES_TABLE", "clientes"), HashKey: "id"},
		{Name: getenvDefault("TRABAJOS_TABLE", "trabajos"), HashKey: "id"},
		{Name: getenvDefault("CLIENTE_TRABAJOS_TABLE", "cliente_trabajos"), HashKey: "cliente_id", RangeKey: "trabajo_id"},
		{Name: getenvDefault("ITEMS_TABLE", "items"), HashKey: "id", Secondary: map[string]string{"trabajo_id-index": "trabajo_id"}},
		{Name: getenvDefault("PAGOS_TABLE", "pagos"), HashKey: "id", Secondary: map[string]string{"trabajo_id-index": "trabajo_id"}},
		{Name: getenvDefault("EVENTOS_TABLE", "eventos"), HashKey: "id"},
		{Name: getenvDefault("DOCUMENTOS_TABLE", "documentos"), HashKey: "id"},
		{Name: getenvDefault("CATALOGOS_TABLE", "catalogos"), HashKey: "tipo", RangeKey: "id"},
	}
}

// EnsureTables creates missing tables (on-demand billing). Intended for
// DynamoDB Local and first deployments; existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec) error {
	logger := logging.GetLogger()
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return err
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return err
		}
		logger.WithField("table", spec.Name).Info("[database][dynamodb] table created")
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]bool{spec.HashKey: true}
	keySchema := []types.KeySchemaElement{{AttributeName: aws.String(spec.HashKey), KeyType: types.KeyTypeHash}}
	if spec.RangeKey != "" {
		attrs[spec.RangeKey] = true
		keySchema = append(keySchema, types.KeySchemaElement{AttributeName: aws.String(spec.RangeKey), KeyType: types.KeyTypeRange})
	}

	var gsis []types.GlobalSecondaryIndex
	for indexName, attr := range spec.Secondary {
		attrs[attr] = true
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(indexName),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	defs := make([]types.AttributeDefinition, 0, len(attrs))
	for name := range attrs {
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS})
	}

	in := &dynamodb.CreateTableInput{
		TableName:            aws.String(spec.Name),
		AttributeDefinitions: defs,
		KeySchema:            keySchema,
		BillingMode:          types.BillingModePayPerRequest,
	}
	if len(gsis) > 0 {
		in.GlobalSecondaryIndexes = gsis
	}
	return in
}
