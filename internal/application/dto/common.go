package dto

// Códigos de error (campo "error") que no llevan texto libre.
const (
	ErrorCodeDuplicate = "duplicate"
	ErrorCodeNotFound  = "not_found"
)

// ErrorResponse cuerpo de error HTTP. Toda respuesta lleva "ok".
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewErrorResponse construye un ErrorResponse con ok=false.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{OK: false, Error: code, Message: message}
}

// OKResponse acuse sin datos ({"ok": true}).
type OKResponse struct {
	OK bool `json:"ok"`
}
