// Package cli expone operaciones administrativas como comandos de consola.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Parqueadero-api/internal/application/role"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

// ErrReported indica que el fallo ya se imprimió como JSON; el proceso solo debe salir con 1.
var ErrReported = errors.New("fallo reportado")

// RoleEnsurer reconcilia el rol de un perfil.
type RoleEnsurer interface {
	EnsureRole(ctx context.Context, email, targetRole string) (*role.Result, error)
}

// Outcome salida del comando.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Defaults valores de configuración para los flags.
type Defaults struct {
	Email string
	Role  string
}

// NewEnsureRoleCommand construye `ensure-role --email x [--role admin]`.
func NewEnsureRoleCommand(ensurer RoleEnsurer, defaults Defaults, log *logger.Logger) *cobra.Command {
	var email, targetRole string

	cmd := &cobra.Command{
		Use:           "ensure-role",
		Short:         "Asigna un rol a un perfil existente (crea o actualiza su única asignación)",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := ensurer.EnsureRole(cmd.Context(), email, targetRole)
			out := outcomeFor(res, err, strings.TrimSpace(email))
			if err != nil {
				log.Error().Err(err).Str("email", email).Str("role", targetRole).Msg("ensure-role fallido")
			} else {
				log.Info().Str("email", res.Email).Str("role", res.Role).Bool("created", res.Created).Msg("rol asignado")
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			if encErr := enc.Encode(out); encErr != nil {
				return encErr
			}
			if !out.Success {
				return ErrReported
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", defaults.Email, "email del perfil (por defecto ADMIN_EMAIL)")
	cmd.Flags().StringVar(&targetRole, "role", defaults.Role, "rol a asignar: admin, operador o cajero")

	return cmd
}

func outcomeFor(res *role.Result, err error, email string) Outcome {
	switch {
	case err == nil && res.Created:
		return Outcome{Success: true, Message: fmt.Sprintf("Rol %s asignado a %s.", res.Role, res.Email)}
	case err == nil:
		return Outcome{Success: true, Message: fmt.Sprintf("Rol de %s actualizado a %s.", res.Email, res.Role)}
	case errors.Is(err, domain.ErrProfileNotFound):
		return Outcome{Message: fmt.Sprintf("No existe un perfil con el email %s.", email)}
	case errors.Is(err, domain.ErrInvalidInput):
		return Outcome{Message: "Parámetros inválidos: se requiere un email y un rol válido (admin, operador, cajero)."}
	case errors.Is(err, domain.ErrLookupFailed):
		return Outcome{Message: "No se pudo consultar el perfil o su rol actual."}
	case errors.Is(err, domain.ErrWriteFailed):
		return Outcome{Message: "No se pudo guardar la asignación de rol."}
	default:
		return Outcome{Message: "Error inesperado al asignar el rol."}
	}
}
