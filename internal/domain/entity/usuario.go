package entity

// Usuario representa una credencial de acceso (tabla usuarios).
type Usuario struct {
	ID       int64
	Usuario  string
	Password string // texto plano: se compara tal cual en el login
}
