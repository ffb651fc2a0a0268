// Comando ensure-role: asegura que un perfil tenga exactamente una asignación de rol.
//
//	ensure-role --email jefe@parqueadero.co --role admin
//
// Imprime {"success":bool,"message":string} y sale con código 0 o 1.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Parqueadero-api/internal/application/role"
	"github.com/jhoicas/Parqueadero-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Parqueadero-api/internal/interfaces/cli"
	"github.com/jhoicas/Parqueadero-api/pkg/config"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("cargar configuración: " + err.Error() + "\n")
		return 1
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Stdout.WriteString(`{"success":false,"message":"No se pudo conectar a la base de datos."}` + "\n")
		return 1
	}
	defer pool.Close()

	reconciler := role.NewReconciler(postgres.NewProfileRepository(pool), postgres.NewTxRunner(pool))
	cmd := cli.NewEnsureRoleCommand(reconciler, cli.Defaults{Email: cfg.Admin.Email, Role: cfg.Admin.Role}, log)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			log.Error().Err(err).Msg("ensure-role")
		}
		return 1
	}
	return 0
}
