package dto

// CreateClienteRequest entrada para crear un cliente.
// El orden de los campos fija el orden de validación de requeridos.
type CreateClienteRequest struct {
	DniRuc         string  `json:"dni_ruc" validate:"required"`
	NombreCompleto string  `json:"nombre_completo" validate:"required"`
	Telefono       *string `json:"telefono"`
	Correo         *string `json:"correo"`
	Direccion      *string `json:"direccion"`
	Estado         *string `json:"estado"`
}

// ClienteResponse salida de un cliente. Las columnas opcionales se serializan como null.
type ClienteResponse struct {
	ID             int64   `json:"id_clientes"`
	DniRuc         string  `json:"dni_ruc"`
	NombreCompleto string  `json:"nombre_completo"`
	Telefono       *string `json:"telefono"`
	Correo         *string `json:"correo"`
	Direccion      *string `json:"direccion"`
	Estado         *string `json:"estado"`
}

// ClienteEnvelope respuesta de crear/actualizar. Cliente es null si el registro ya no existe.
type ClienteEnvelope struct {
	OK      bool             `json:"ok"`
	Cliente *ClienteResponse `json:"cliente"`
}

// ClienteListResponse respuesta del listado completo.
type ClienteListResponse struct {
	OK       bool              `json:"ok"`
	Clientes []ClienteResponse `json:"clientes"`
}

// CheckResponse respuesta de la verificación de duplicados.
type CheckResponse struct {
	OK     bool `json:"ok"`
	Exists bool `json:"exists"`
}
