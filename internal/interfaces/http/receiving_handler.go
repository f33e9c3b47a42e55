package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lagerhub/internal/application/dto"
	"github.com/jhoicas/lagerhub/internal/application/receiving"
)

// ReceivingHandler maneja el registro de entradas de mercancía.
type ReceivingHandler struct {
	uc *receiving.UseCase
}

// NewReceivingHandler construye el handler de entradas.
func NewReceivingHandler(uc *receiving.UseCase) *ReceivingHandler {
	return &ReceivingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de mercancía
// @Tags         receiving
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "producto, cantidad, ubicación"
// @Success      201   {object}  dto.CreateReceiptResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceivingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
