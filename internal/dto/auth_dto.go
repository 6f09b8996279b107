package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type RegistroRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,min=3,max=60"`
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=8"`
	Rol           string `json:"rol"            validate:"required"`
	// Profile fields, required when rol = cliente
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required"`
	Password      string `json:"password"       validate:"required"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"` // seconds
	Usuario   UsuarioResponse `json:"usuario"`
}

type UsuarioResponse struct {
	ID            string  `json:"id"`
	NombreUsuario string  `json:"nombre_usuario"`
	Email         string  `json:"email"`
	Rol           string  `json:"rol"`
	ClienteID     *string `json:"cliente_id,omitempty"`
	Estado        bool    `json:"estado"`
}

type ActualizarUsuarioRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Rol      *string `json:"rol"`
	Estado   *bool   `json:"estado"`
}

// ─── Roles ───────────────────────────────────────────────────────────────────

type CrearRolRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=3,max=40"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarRolRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=3,max=40"`
	Descripcion *string `json:"descripcion"`
	Estado      *bool   `json:"estado"`
}

type RolResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Estado      bool    `json:"estado"`
}
