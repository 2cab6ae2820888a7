package request

import "gestion_oficina/internal/usecase"

// DocumentoRequest carries the file as base64; a data URL prefix is accepted.
type DocumentoRequest struct {
	ClienteID     string `json:"clienteId"`
	TrabajoID     string `json:"trabajoId"`
	Nombre        string `json:"nombre" binding:"required"`
	TipoMime      string `json:"tipoMime" example:"application/pdf"`
	Categoria     string `json:"categoria"`
	ArchivoBase64 string `json:"archivoBase64" binding:"required"`
}

func (r DocumentoRequest) ToInput() usecase.DocumentoInput {
	return usecase.DocumentoInput{
		ClienteID:     r.ClienteID,
		TrabajoID:     r.TrabajoID,
		Nombre:        r.Nombre,
		TipoMime:      r.TipoMime,
		Categoria:     r.Categoria,
		ArchivoBase64: r.ArchivoBase64,
	}
}
