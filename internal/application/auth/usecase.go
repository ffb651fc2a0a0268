package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	"github.com/jhoicas/Parqueadero-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del personal: el rol del token sale de la asignación reconciliada.
type AuthUseCase struct {
	profiles repository.ProfileRepository
	roles    repository.RoleRepository
	jwtCfg   JWTConfig
	validate *validator.Validate
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(profiles repository.ProfileRepository, roles repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, roles: roles, jwtCfg: jwtCfg, validate: validator.New()}
}

// Login verifica email/password, genera JWT y retorna token + perfil.
// Credenciales inválidas o email desconocido: ErrUnauthorized. Perfil sin rol: ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	profile, err := uc.profiles.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	binding, err := uc.roles.GetByUserID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if binding == nil || !entity.IsValidRole(binding.Role) {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, binding.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Profile: dto.ProfileResponse{
			ID:        profile.ID,
			Email:     profile.Email,
			Name:      profile.Name,
			Role:      binding.Role,
			CreatedAt: profile.CreatedAt,
		},
	}, nil
}
