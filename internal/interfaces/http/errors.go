package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lagerhub/internal/application/dto"
	"github.com/jhoicas/lagerhub/internal/application/receiving"
	"github.com/jhoicas/lagerhub/internal/domain"
	"github.com/jhoicas/lagerhub/internal/infrastructure/livingapps"
)

// respondError traduce los errores de aplicación a respuestas HTTP:
//
//	ValidationError          → 422 con el detalle por campo
//	ErrSubmissionInFlight    → 409 (hay otra escritura en curso)
//	ErrSnapshotNotLoaded     → 503 (aún no hay datos cargados)
//	livingapps.APIError      → 502 con el cuerpo crudo del servidor
//	resto                    → 500
func respondError(c *fiber.Ctx, err error) error {
	var vErr *receiving.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    "VALIDATION",
			"message": "datos de entrada inválidos",
			"fields":  vErr.Fields,
		})
	}
	if errors.Is(err, domain.ErrSubmissionInFlight) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMISSION_IN_FLIGHT", Message: "ya hay un registro en curso, inténtalo de nuevo en unos segundos"})
	}
	if errors.Is(err, domain.ErrSnapshotNotLoaded) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SNAPSHOT_NOT_LOADED", Message: "los datos del almacén aún no están cargados"})
	}
	var apiErr *livingapps.APIError
	if errors.As(err, &apiErr) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Body})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
