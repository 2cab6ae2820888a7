package request

import "gestion_oficina/internal/usecase"

type ClienteRequest struct {
	Nombre         string `json:"nombre" binding:"required"`
	Identificacion string `json:"identificacion"`
	Email          string `json:"email" binding:"omitempty,email"`
	Telefono       string `json:"telefono"`
	Direccion      string `json:"direccion"`
	TipoClienteID  string `json:"tipoClienteId"`
	Notas          string `json:"notas"`
}

func (r ClienteRequest) ToInput() usecase.ClienteInput {
	return usecase.ClienteInput{
		Nombre:         r.Nombre,
		Identificacion: r.Identificacion,
		Email:          r.Email,
		Telefono:       r.Telefono,
		Direccion:      r.Direccion,
		TipoClienteID:  r.TipoClienteID,
		Notas:          r.Notas,
	}
}
