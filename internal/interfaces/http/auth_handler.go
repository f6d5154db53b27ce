package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario (o username), password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseJSON(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(MsgInvalidBody, ""))
	}
	user, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("Usuario y contraseña requeridos", ""))
		}
		return writeError(c, err)
	}
	return c.JSON(dto.LoginResponse{OK: true, User: *user})
}
