package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP para Sale. Las ventas son
// append-only: solo creación y lecturas.
type SaleHandler struct {
	createUC *sales.CreateSaleUseCase
	queryUC  *sales.QueryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, queryUC *sales.QueryUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale": out})
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sale": out})
}

// List lista todas las ventas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sales": out})
}

// Report devuelve el resumen de ventas (listado, cantidad y monto total).
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	out, err := h.queryUC.Report()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
