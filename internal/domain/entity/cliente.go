package entity

// EstadoActivo valor por defecto de Estado al crear un cliente.
const EstadoActivo = "Activo"

// Cliente representa un cliente registrado (tabla clientes).
type Cliente struct {
	ID             int64
	DniRuc         string // DNI o RUC, único entre clientes
	NombreCompleto string
	Telefono       *string
	Correo         *string
	Direccion      *string
	Estado         *string
}

// ClienteChange asignación de una columna en una actualización parcial. Value nil escribe NULL.
type ClienteChange struct {
	Column string
	Value  *string
}
