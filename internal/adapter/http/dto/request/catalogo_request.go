package request

import "gestion_oficina/internal/usecase"

type CatalogoRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	Color  string `json:"color" example:"#3366ff"`
	Orden  int    `json:"orden"`
	Activo *bool  `json:"activo"`
}

func (r CatalogoRequest) ToInput() usecase.CatalogoInput {
	return usecase.CatalogoInput{Nombre: r.Nombre, Color: r.Color, Orden: r.Orden, Activo: r.Activo}
}
