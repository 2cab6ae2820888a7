package response

import (
	"time"

	"gestion_oficina/internal/domain/entities"
)

// DocumentoResponse never carries the file content; it is fetched from
// /documentos/{id}/archivo.
type DocumentoResponse struct {
	ID          string    `json:"id"`
	ClienteID   string    `json:"clienteId,omitempty"`
	TrabajoID   string    `json:"trabajoId,omitempty"`
	Nombre      string    `json:"nombre"`
	TipoMime    string    `json:"tipoMime"`
	Tamano      int64     `json:"tamano"`
	Categoria   string    `json:"categoria,omitempty"`
	FechaSubida time.Time `json:"fechaSubida"`
}

func FromDocumento(d entities.Documento) DocumentoResponse {
	return DocumentoResponse{
		ID:          d.ID,
		ClienteID:   d.ClienteID,
		TrabajoID:   d.TrabajoID,
		Nombre:      d.Nombre,
		TipoMime:    d.TipoMime,
		Tamano:      d.Tamano,
		Categoria:   d.Categoria,
		FechaSubida: d.FechaSubida,
	}
}

func FromDocumentos(ds []entities.Documento) []DocumentoResponse {
	out := make([]DocumentoResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDocumento(d))
	}
	return out
}
