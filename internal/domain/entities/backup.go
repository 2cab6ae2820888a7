package entities

import "time"

const BackupVersion = "1"

// Backup is the full export document. Documentos are exported with their
// inline content redacted.
type Backup struct {
	Version       string          `json:"version"`
	Timestamp     time.Time       `json:"timestamp"`
	Clientes      []Cliente       `json:"clientes"`
	Trabajos      []Trabajo       `json:"trabajos"`
	Items         []Item          `json:"items"`
	Pagos         []Pago          `json:"pagos"`
	Eventos       []Evento        `json:"eventos"`
	Documentos    []Documento     `json:"documentos"`
	TiposCliente  []CatalogoEntry `json:"tiposCliente"`
	TiposTrabajo  []CatalogoEntry `json:"tiposTrabajo"`
	Categorias    []CatalogoEntry `json:"categorias"`
	EstadosKanban []CatalogoEntry `json:"estadosKanban"`
}
