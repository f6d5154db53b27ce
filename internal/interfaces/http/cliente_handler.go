package http

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/cliente"
	"github.com/jhoicas/clientes-api/internal/application/dto"
)

// ClienteHandler maneja las peticiones HTTP de clientes.
type ClienteHandler struct {
	uc *cliente.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *cliente.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {object}  dto.ClienteListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ClienteListResponse{OK: true, Clientes: list})
}

// Check godoc
// @Summary      Verificar si un DNI/RUC ya está en uso
// @Tags         clientes
// @Produce      json
// @Param        dni_ruc  query  string  true   "DNI/RUC (alias: dni)"
// @Param        id       query  int     false  "id a excluir (edición)"
// @Success      200  {object}  dto.CheckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes/check [get]
func (h *ClienteHandler) Check(c *fiber.Ctx) error {
	dniRuc := c.Query("dni_ruc")
	if dniRuc == "" {
		dniRuc = c.Query("dni")
	}
	var excludeID *int64
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("id inválido", ""))
		}
		excludeID = &id
	}
	exists, err := h.uc.CheckDuplicate(c.UserContext(), dniRuc, excludeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CheckResponse{OK: true, Exists: exists})
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "dni_ruc y nombre_completo obligatorios"
// @Success      200   {object}  dto.ClienteEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := parseJSON(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(MsgInvalidBody, ""))
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ClienteEnvelope{OK: true, Cliente: out})
}

// Update godoc
// @Summary      Actualizar cliente (parcial)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "id_clientes"
// @Success      200   {object}  dto.ClienteEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}
	var body map[string]json.RawMessage
	if err := parseJSON(c, &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(MsgInvalidBody, ""))
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ClienteEnvelope{OK: true, Cliente: out})
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Produce      json
// @Param        id  path  int  true  "id_clientes"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
