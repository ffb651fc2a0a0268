package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

const msgCompanyNotFound = "Empresa no encontrada"

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, msgCompanyNotFound)
	}
	return c.JSON(dto.OK(items, ""))
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.Envelope
// @Failure      422  {object}  dto.Envelope
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext(), c.Body())
	if err != nil {
		return respondError(c, h.log, err, msgCompanyNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "Empresa creada correctamente"))
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, msgCompanyNotFound)
	}
	return c.JSON(dto.OK(out, ""))
}

// Update godoc
// @Summary      Actualizar empresa (parcial: solo los campos enviados)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      422  {object}  dto.Envelope
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return respondError(c, h.log, err, msgCompanyNotFound)
	}
	return c.JSON(dto.OK(out, "Empresa actualizada correctamente"))
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err, msgCompanyNotFound)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "Empresa eliminada correctamente"})
}
