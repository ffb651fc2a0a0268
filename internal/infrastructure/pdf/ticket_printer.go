// Package pdf implementa la superficie de impresión de tickets y recibos sobre Maroto v2.
//
// Página de ancho de rollo térmico (80 mm) y alto proporcional al número de líneas; el cuerpo
// se imprime en Courier para conservar las columnas del documento.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Parqueadero-api/internal/application/ticket"
)

const (
	pageWidthMM  = 80
	marginMM     = 5
	lineHeightMM = 4
	fontSize     = 8
)

var errNothingToPrint = errors.New("pdf: no hay documento para imprimir")

// TicketPrinter abre superficies PDF que escriben en w al imprimir.
type TicketPrinter struct {
	w io.Writer
}

var _ ticket.SurfaceOpener = (*TicketPrinter)(nil)

// NewTicketPrinter construye la impresora sobre el destino de bytes.
func NewTicketPrinter(w io.Writer) *TicketPrinter {
	return &TicketPrinter{w: w}
}

// Open adquiere una superficie nueva.
func (p *TicketPrinter) Open(ctx context.Context) (ticket.Surface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &surface{w: p.w}, nil
}

type surface struct {
	w      io.Writer
	m      core.Maroto
	closed bool
}

func (s *surface) Write(doc ticket.Document) error {
	if s.closed {
		return errors.New("pdf: superficie cerrada")
	}
	lines := doc.Lines()
	height := float64(len(lines)*lineHeightMM + 2*marginMM)

	cfg := config.NewBuilder().
		WithDimensions(pageWidthMM, height).
		WithLeftMargin(marginMM).WithRightMargin(marginMM).
		WithTopMargin(marginMM).WithBottomMargin(marginMM).
		WithDefaultFont(&props.Font{Family: fontfamily.Courier, Size: fontSize}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)
	style := props.Text{Family: fontfamily.Courier, Size: fontSize}
	for _, l := range lines {
		m.AddRows(text.NewRow(lineHeightMM, l, style))
	}
	s.m = m
	return nil
}

func (s *surface) Print(ctx context.Context) error {
	if s.m == nil {
		return errNothingToPrint
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := s.m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	if _, err := s.w.Write(doc.GetBytes()); err != nil {
		return fmt.Errorf("pdf: escribir salida: %w", err)
	}
	return nil
}

// Close libera el documento en memoria; llamadas repetidas no hacen nada.
func (s *surface) Close() error {
	s.closed = true
	s.m = nil
	return nil
}
