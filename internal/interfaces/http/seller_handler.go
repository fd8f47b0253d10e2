package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain"
)

// SellerHandler maneja los vendedores y el vendedor por defecto (protegido).
type SellerHandler struct {
	uc *usecase.SellerUseCase
}

func NewSellerHandler(uc *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear vendedor
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "datos del vendedor"
// @Success      201   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sellers [post]
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el nombre del vendedor es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vendedores (el predeterminado primero)
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SellerResponse
// @Router       /api/sellers [get]
func (h *SellerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vendedor por ID
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [get]
func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vendedor
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vendedor"
// @Param        body  body  dto.UpdateSellerRequest  true  "datos nuevos"
// @Success      200   {object}  dto.SellerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [put]
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el nombre del vendedor es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	return c.JSON(out)
}

// SetDefault godoc
// @Summary      Marcar vendedor como predeterminado
// @Description  Desmarca cualquier otro vendedor predeterminado en la misma operación.
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id}/default [put]
func (h *SellerHandler) SetDefault(c *fiber.Ctx) error {
	out, err := h.uc.SetDefault(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vendedor (sus facturas quedan sin vendedor)
// @Tags         sellers
// @Security     Bearer
// @Param        id  path  string  true  "ID del vendedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [delete]
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
