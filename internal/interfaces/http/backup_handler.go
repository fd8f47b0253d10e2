package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain"
)

// BackupHandler exporta y restaura el respaldo JSON completo (protegido).
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo JSON completo
// @Description  Facturas, líneas, clientes, productos, vendedores y configuración en un solo documento versionado.
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Backup
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="respaldo-comisiones.json"`)
	return c.JSON(out)
}

// Restore godoc
// @Summary      Restaurar desde un respaldo JSON
// @Description  Reemplaza todas las facturas dentro de una transacción; catálogos y configuración se upsertean. Las referencias rotas se anulan en vez de rechazar el respaldo.
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.Backup  true  "respaldo exportado previamente"
// @Success      200  {object}  dto.RestoreResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	var in dto.Backup
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Restore(c.Context(), &in)
	if err != nil {
		if err == domain.ErrInvalidBackup {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el respaldo está vacío o no tiene el formato esperado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
