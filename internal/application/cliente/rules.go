package cliente

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Columnas de clientes que admiten actualización parcial, en el orden en que se escriben en el SET.
const (
	FieldDniRuc         = "dni_ruc"
	FieldNombreCompleto = "nombre_completo"
	FieldTelefono       = "telefono"
	FieldCorreo         = "correo"
	FieldDireccion      = "direccion"
	FieldEstado         = "estado"
)

// UpdatableFields lista fija de campos actualizables.
var UpdatableFields = []string{
	FieldDniRuc,
	FieldNombreCompleto,
	FieldTelefono,
	FieldCorreo,
	FieldDireccion,
	FieldEstado,
}

// MsgNoFieldsToUpdate mensaje cuando el cuerpo de un PUT no trae ningún campo actualizable.
const MsgNoFieldsToUpdate = "No fields to update"

var validate = newValidator()

// newValidator usa el nombre JSON del campo en los errores.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreate comprueba los requeridos de un alta (dni_ruc antes que nombre_completo).
// Devuelve *domain.ValidationError con el primer campo faltante.
func ValidateCreate(in dto.CreateClienteRequest) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.NewValidationError(verrs[0].Field())
	}
	return err
}

// DeriveChanges intersecta UpdatableFields con las claves presentes en body.
// Cada valor debe ser un string JSON o null; null escribe NULL en la columna.
func DeriveChanges(body map[string]json.RawMessage) ([]entity.ClienteChange, error) {
	changes := make([]entity.ClienteChange, 0, len(UpdatableFields))
	for _, field := range UpdatableFields {
		raw, ok := body[field]
		if !ok {
			continue
		}
		var value *string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, &domain.ValidationError{Field: field, Message: field + " debe ser texto"}
		}
		changes = append(changes, entity.ClienteChange{Column: field, Value: value})
	}
	if len(changes) == 0 {
		return nil, &domain.ValidationError{Message: MsgNoFieldsToUpdate}
	}
	return changes, nil
}

// ChangedDniRuc devuelve el nuevo dni_ruc si el cambio lo asigna a un valor no nulo.
func ChangedDniRuc(changes []entity.ClienteChange) (string, bool) {
	for _, ch := range changes {
		if ch.Column == FieldDniRuc && ch.Value != nil {
			return *ch.Value, true
		}
	}
	return "", false
}

// ToResponse mapea la entidad a su forma JSON. nil si c es nil.
func ToResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:             c.ID,
		DniRuc:         c.DniRuc,
		NombreCompleto: c.NombreCompleto,
		Telefono:       c.Telefono,
		Correo:         c.Correo,
		Direccion:      c.Direccion,
		Estado:         c.Estado,
	}
}
