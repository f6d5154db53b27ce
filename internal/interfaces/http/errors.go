package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// MsgDuplicateDniRuc texto para el usuario ante un dni_ruc repetido.
const MsgDuplicateDniRuc = "El DNI/RUC ya está registrado. Por favor utiliza uno diferente."

// MsgInvalidBody cuerpo JSON ilegible.
const MsgInvalidBody = "cuerpo inválido"

// writeError traduce errores de dominio a su estado HTTP y envoltorio JSON.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(verr.Message, ""))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.NewErrorResponse(dto.ErrorCodeDuplicate, MsgDuplicateDniRuc))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewErrorResponse("Credenciales inválidas", ""))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.NewErrorResponse("timeout", err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(err.Error(), ""))
	}
}

// ErrorHandler mantiene el envoltorio {ok:false, error} para errores de Fiber (404, 405, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	msg := err.Error()
	if code == fiber.StatusNotFound {
		msg = dto.ErrorCodeNotFound
	}
	return c.Status(code).JSON(dto.NewErrorResponse(msg, ""))
}

// parseJSON decodifica el cuerpo con el decoder de la app. Un cuerpo vacío deja out sin tocar.
func parseJSON(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, out)
}
