package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/application/usecase"
)

// SettingHandler maneja la configuración clave/valor de la tienda.
type SettingHandler struct {
	uc *usecase.SettingUseCase
}

// NewSettingHandler construye el handler.
func NewSettingHandler(uc *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// List lista todos los parámetros.
func (h *SettingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"settings": out})
}

// Update cambia el valor de un parámetro por clave.
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	key := c.Params("key")
	var in dto.UpdateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(key, in.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"setting": out})
}
