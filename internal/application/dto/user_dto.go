package dto

// LoginRequest entrada para login. Se acepta "usuario" o, en su defecto, "username".
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Name devuelve el nombre de usuario efectivo.
func (r LoginRequest) Name() string {
	if r.Usuario != "" {
		return r.Usuario
	}
	return r.Username
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID      int64  `json:"id_usuarios"`
	Usuario string `json:"usuario"`
}

// LoginResponse salida del login.
type LoginResponse struct {
	OK   bool         `json:"ok"`
	User UserResponse `json:"user"`
}
