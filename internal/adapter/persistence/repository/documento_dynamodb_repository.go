package repository

import (
	"context"
	"fmt"
	"sort"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultDocumentosTableName = "documentos"

// DynamoDB items are capped at 400 KB; larger documents need GCS_BUCKET.
type documentoItem struct {
	ID            string `dynamodbav:"id"`
	ClienteID     string `dynamodbav:"cliente_id,omitempty"`
	TrabajoID     string `dynamodbav:"trabajo_id,omitempty"`
	Nombre        string `dynamodbav:"nombre"`
	TipoMime      string `dynamodbav:"tipo_mime"`
	Tamano        int64  `dynamodbav:"tamano"`
	Categoria     string `dynamodbav:"categoria,omitempty"`
	ArchivoBase64 string `dynamodbav:"archivo_base64,omitempty"`
	StorageKey    string `dynamodbav:"storage_key,omitempty"`
	FechaSubida   string `dynamodbav:"fecha_subida"`
}

// DocumentoDynamoRepository persists Documento metadata (and inline content)
// in DynamoDB.
type DocumentoDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDocumentoRepository = (*DocumentoDynamoRepository)(nil)

func NewDocumentoDynamoRepository(ddb DynamoAPI) *DocumentoDynamoRepository {
	return &DocumentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTOS_TABLE", defaultDocumentosTableName),
	}
}

func (r *DocumentoDynamoRepository) Create(ctx context.Context, d entities.Documento) (entities.Documento, error) {
	av, err := attributevalue.MarshalMap(toDocumentoItem(d))
	if err != nil {
		return entities.Documento{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Documento{}, err
	}
	return d, nil
}

func (r *DocumentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Documento, error) {
	raw, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || len(raw) == 0 {
		return entities.Documento{}, err
	}
	var it documentoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Documento{}, err
	}
	return fromDocumentoItem(it)
}

func (r *DocumentoDynamoRepository) List(ctx context.Context) ([]entities.Documento, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var items []documentoItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Documento, 0, len(items))
	for _, it := range items {
		v, err := fromDocumentoItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].FechaSubida.Equal(out[j].FechaSubida) {
			return out[i].FechaSubida.Before(out[j].FechaSubida)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *DocumentoDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByKey(ctx, r.ddb, r.tableName, stringKey("id", id))
}

func (r *DocumentoDynamoRepository) ReplaceAll(ctx context.Context, documentos []entities.Documento) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return err
	}
	avs := make([]attrMap, 0, len(documentos))
	for _, d := range documentos {
		av, err := attributevalue.MarshalMap(toDocumentoItem(d))
		if err != nil {
			return err
		}
		avs = append(avs, av)
	}
	return replaceAll(ctx, r.ddb, r.tableName, []string{"id"}, existing, avs)
}

func toDocumentoItem(d entities.Documento) documentoItem {
	return documentoItem{
		ID:            d.ID,
		ClienteID:     d.ClienteID,
		TrabajoID:     d.TrabajoID,
		Nombre:        d.Nombre,
		TipoMime:      d.TipoMime,
		Tamano:        d.Tamano,
		Categoria:     d.Categoria,
		ArchivoBase64: d.ArchivoBase64,
		StorageKey:    d.StorageKey,
		FechaSubida:   formatTime(d.FechaSubida),
	}
}

func fromDocumentoItem(it documentoItem) (entities.Documento, error) {
	var d fieldDecoder
	doc := entities.Documento{
		ID:            it.ID,
		ClienteID:     it.ClienteID,
		TrabajoID:     it.TrabajoID,
		Nombre:        it.Nombre,
		TipoMime:      it.TipoMime,
		Tamano:        it.Tamano,
		Categoria:     it.Categoria,
		ArchivoBase64: it.ArchivoBase64,
		StorageKey:    it.StorageKey,
		FechaSubida:   d.time("fecha_subida", it.FechaSubida),
	}
	if d.err != nil {
		return entities.Documento{}, fmt.Errorf("documento %s: %w", it.ID, d.err)
	}
	return doc, nil
}
