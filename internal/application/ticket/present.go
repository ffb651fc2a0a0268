package ticket

import (
	"context"
	"errors"
	"fmt"
)

// Surface es una superficie de impresión abierta (vista previa, PDF, impresora).
type Surface interface {
	Write(doc Document) error
	// Print dispara la impresión; retorna cuando termina o se cancela.
	Print(ctx context.Context) error
	Close() error
}

// SurfaceOpener adquiere superficies de impresión.
type SurfaceOpener interface {
	Open(ctx context.Context) (Surface, error)
}

// Present abre una superficie, escribe el documento, imprime y libera la superficie siempre,
// tanto si la impresión termina como si falla o se cancela el contexto.
func Present(ctx context.Context, opener SurfaceOpener, doc Document) (err error) {
	surface, err := opener.Open(ctx)
	if err != nil {
		return fmt.Errorf("ticket: abrir superficie: %w", err)
	}
	defer func() {
		if cerr := surface.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("ticket: liberar superficie: %w", cerr))
		}
	}()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ticket: impresión cancelada: %w", err)
	}
	if err := surface.Write(doc); err != nil {
		return fmt.Errorf("ticket: escribir documento: %w", err)
	}
	if err := surface.Print(ctx); err != nil {
		return fmt.Errorf("ticket: imprimir: %w", err)
	}
	return nil
}
