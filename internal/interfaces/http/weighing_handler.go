package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/application/usecase"
	"github.com/jcamargo/bascula-api/internal/domain"
)

// WeighingHandler maneja las peticiones HTTP para Weighing (protegido).
type WeighingHandler struct {
	uc *usecase.WeighingUseCase
}

// NewWeighingHandler construye el handler.
func NewWeighingHandler(uc *usecase.WeighingUseCase) *WeighingHandler {
	return &WeighingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pesaje
// @Tags         weighings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWeighingRequest  true  "Datos del pesaje"
// @Success      201   {object}  dto.WeighingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/weighings [post]
func (h *WeighingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWeighingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return weighingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pesajes
// @Tags         weighings
// @Security     Bearer
// @Produce      json
// @Param        from        query  string  false  "Fecha inicial (inclusiva)"
// @Param        to          query  string  false  "Fecha final (inclusiva)"
// @Param        supplierId  query  string  false  "ID exacto de proveedor"
// @Param        carNumber   query  string  false  "Substring de placa (sin distinguir mayúsculas)"
// @Param        page        query  int     false  "Página"   default(1)
// @Param        pageSize    query  int     false  "Tamaño"   default(20)
// @Success      200  {object}  dto.WeighingListResponse
// @Router       /api/weighings [get]
func (h *WeighingHandler) List(c *fiber.Ctx) error {
	var in dto.ListWeighingsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return weighingError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pesaje por ID
// @Tags         weighings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pesaje"
// @Success      200  {object}  dto.WeighingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/weighings/{id} [get]
func (h *WeighingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return weighingError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pesaje (parcial)
// @Tags         weighings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pesaje"
// @Param        body  body  dto.UpdateWeighingRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WeighingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/weighings/{id} [patch]
func (h *WeighingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWeighingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return weighingError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pesaje
// @Tags         weighings
// @Security     Bearer
// @Param        id  path  string  true  "ID del pesaje"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/weighings/{id} [delete]
func (h *WeighingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return weighingError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// weighingError traduce los errores de dominio del pesaje a HTTP.
func weighingError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "entrada inválida", Fields: verr.Fields})
	case errors.Is(err, domain.ErrSupplierNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pesaje no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
