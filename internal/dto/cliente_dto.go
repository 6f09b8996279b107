package dto

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=80"`
	Apellido  *string `json:"apellido"  validate:"omitempty,min=2,max=80"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ClienteResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Telefono  *string `json:"telefono"`
	Email     string  `json:"email"`
	Direccion *string `json:"direccion"`
	Estado    bool    `json:"estado"`
}
