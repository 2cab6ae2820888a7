package entities

import "time"

// Documento is a file attached to a cliente and/or trabajo.
//
// Content lives either inline in ArchivoBase64 or in the blob store under
// StorageKey; never both.
type Documento struct {
	ID            string    `json:"id"`
	ClienteID     string    `json:"clienteId,omitempty"`
	TrabajoID     string    `json:"trabajoId,omitempty"`
	Nombre        string    `json:"nombre"`
	TipoMime      string    `json:"tipoMime"`
	Tamano        int64     `json:"tamano"`
	Categoria     string    `json:"categoria,omitempty"`
	ArchivoBase64 string    `json:"archivoBase64,omitempty"`
	StorageKey    string    `json:"storageKey,omitempty"`
	FechaSubida   time.Time `json:"fechaSubida"`
}
