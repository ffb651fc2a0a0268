package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/validation"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	"github.com/jhoicas/Parqueadero-api/pkg/slug"
)

const duplicateSlugMessage = "Ya existe una empresa con un nombre equivalente."

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo      repository.CompanyRepository
	validator *validation.CompanyValidator
	now       func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el validador.
func NewCompanyUseCase(repo repository.CompanyRepository, v *validation.CompanyValidator) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, validator: v, now: time.Now}
}

// List devuelve todas las empresas en el orden del repositorio. Nunca devuelve nil.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

// Create valida el payload, deriva el slug y persiste. Con errores de validación no escribe nada.
func (uc *CompanyUseCase) Create(ctx context.Context, raw []byte) (*dto.CompanyResponse, error) {
	in, err := uc.validator.Validate(raw, validation.ModeCreate)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Slug:         slug.Make(in.Name),
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
		Description:  in.Description,
		IsActive:     in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, duplicateAsValidation(err)
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Update aplica solo los campos presentes. El slug se recalcula únicamente si name
// viene en el payload y difiere del almacenado.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, raw []byte) (*dto.CompanyResponse, error) {
	company, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	in, err := uc.validator.Validate(raw, validation.ModeUpdate)
	if err != nil {
		return nil, err
	}

	if in.Has(validation.FieldName) && in.Name != company.Name {
		company.Name = in.Name
		company.Slug = slug.Make(in.Name)
	}
	if in.Has(validation.FieldContactEmail) {
		company.ContactEmail = in.ContactEmail
	}
	if in.Has(validation.FieldContactPhone) {
		company.ContactPhone = in.ContactPhone
	}
	if in.Has(validation.FieldAddress) {
		company.Address = in.Address
	}
	if in.Has(validation.FieldCity) {
		company.City = in.City
	}
	if in.Has(validation.FieldState) {
		company.State = in.State
	}
	if in.Has(validation.FieldZipCode) {
		company.ZipCode = in.ZipCode
	}
	if in.Has(validation.FieldCountry) {
		company.Country = in.Country
	}
	if in.Has(validation.FieldDescription) {
		company.Description = in.Description
	}
	if in.Has(validation.FieldIsActive) {
		company.IsActive = in.IsActive
	}
	company.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, duplicateAsValidation(err)
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina la empresa. No es idempotente: una segunda eliminación devuelve domain.ErrNotFound.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CompanyUseCase) find(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// duplicateAsValidation reporta un choque de slug como error del campo name.
func duplicateAsValidation(err error) error {
	if !errors.Is(err, domain.ErrDuplicate) {
		return err
	}
	verr := domain.NewValidationError()
	verr.Add(validation.FieldName, duplicateSlugMessage)
	return verr
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		ZipCode:      c.ZipCode,
		Country:      c.Country,
		Description:  c.Description,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
