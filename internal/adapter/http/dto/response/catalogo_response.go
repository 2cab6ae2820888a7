package response

import "gestion_oficina/internal/domain/entities"

type CatalogoResponse struct {
	ID     string `json:"id"`
	Tipo   string `json:"tipo"`
	Nombre string `json:"nombre"`
	Color  string `json:"color,omitempty"`
	Orden  int    `json:"orden"`
	Activo bool   `json:"activo"`
}

func FromCatalogo(c entities.CatalogoEntry) CatalogoResponse {
	return CatalogoResponse{ID: c.ID, Tipo: string(c.Tipo), Nombre: c.Nombre, Color: c.Color, Orden: c.Orden, Activo: c.Activo}
}

func FromCatalogos(cs []entities.CatalogoEntry) []CatalogoResponse {
	out := make([]CatalogoResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCatalogo(c))
	}
	return out
}
