package entities

// TipoCatalogo names one of the configurable lookup lists.
type TipoCatalogo string

const (
	CatalogoTiposCliente  TipoCatalogo = "tiposCliente"
	CatalogoTiposTrabajo  TipoCatalogo = "tiposTrabajo"
	CatalogoCategorias    TipoCatalogo = "categorias"
	CatalogoEstadosKanban TipoCatalogo = "estadosKanban"
)

func (t TipoCatalogo) Valid() bool {
	switch t {
	case CatalogoTiposCliente, CatalogoTiposTrabajo, CatalogoCategorias, CatalogoEstadosKanban:
		return true
	}
	return false
}

type CatalogoEntry struct {
	ID     string       `json:"id"`
	Tipo   TipoCatalogo `json:"tipo"`
	Nombre string       `json:"nombre"`
	Color  string       `json:"color,omitempty"`
	Orden  int          `json:"orden"`
	Activo bool         `json:"activo"`
}
