package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/dayflow-api/internal/application/directory"
	"github.com/dayflow/dayflow-api/internal/application/dto"
)

// EmployeeHandler directorio de empleados (identidades saneadas).
type EmployeeHandler struct {
	uc *directory.UseCase
}

// NewEmployeeHandler construye el handler del directorio.
func NewEmployeeHandler(uc *directory.UseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados (requiere view_all_employees)
// @Tags         employees
// @Produce      json
// @Param        limit   query  int  false  "máximo por página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   entity.SafeUser
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Missing required fields"})
	}
	page.DefaultPage()

	users, err := h.uc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Database error"})
	}
	return c.JSON(users)
}
