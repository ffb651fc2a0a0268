package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/ticket"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

func TestTicketPrinter_GeneraPDF(t *testing.T) {
	var buf bytes.Buffer
	doc := ticket.RenderTicket(entity.ParkingSession{TicketNumber: "T-1", EntryTime: "2024-01-01T10:00:00Z", LicensePlate: "ABC123"})

	err := ticket.Present(context.Background(), NewTicketPrinter(&buf), doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestTicketPrinter_PrintSinDocumento(t *testing.T) {
	s, err := NewTicketPrinter(&bytes.Buffer{}).Open(context.Background())
	require.NoError(t, err)
	defer s.Close()

	assert.ErrorIs(t, s.Print(context.Background()), errNothingToPrint)
}

func TestTicketPrinter_CerradaNoAceptaEscritura(t *testing.T) {
	s, err := NewTicketPrinter(&bytes.Buffer{}).Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, s.Write(ticket.Document{Body: "x"}))
	assert.NoError(t, s.Close())
}

func TestTicketPrinter_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTicketPrinter(&bytes.Buffer{}).Open(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
