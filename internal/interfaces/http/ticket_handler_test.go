package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/ticket"
	infrapdf "github.com/jhoicas/Parqueadero-api/internal/infrastructure/pdf"
)

// bufferPrinter escribe el cuerpo del documento en texto plano.
type bufferPrinter struct {
	w        io.Writer
	printErr error
	closed   *int
	doc      ticket.Document
}

func (p *bufferPrinter) Open(context.Context) (ticket.Surface, error) { return p, nil }

func (p *bufferPrinter) Write(doc ticket.Document) error {
	p.doc = doc
	return nil
}

func (p *bufferPrinter) Print(context.Context) error {
	if p.printErr != nil {
		return p.printErr
	}
	_, err := io.WriteString(p.w, p.doc.Body)
	return err
}

func (p *bufferPrinter) Close() error {
	if p.closed != nil {
		*p.closed++
	}
	return nil
}

const sessionBody = `{"ticketNumber":"T-1","entryTime":"2024-01-01T10:00:00Z","licensePlate":"ABC123","amount":12.5}`

func TestTickets_RequiereToken(t *testing.T) {
	app, _ := buildApp(t, nil)

	resp, env := call(t, app, http.MethodPost, "/api/tickets/ticket", sessionBody, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", env.Code)
}

func TestTickets_RenderTicket(t *testing.T) {
	app, _ := buildApp(t, nil)

	resp, env := call(t, app, http.MethodPost, "/api/tickets/ticket", sessionBody, tokenForRole(t, "operador"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc dto.DocumentResponse
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	assert.Contains(t, doc.Body, "Ticket: T-1")
	assert.Contains(t, doc.Body, "Tipo: No especificado")
	assert.NotContains(t, doc.Body, "Color:")
}

func TestTickets_RenderReceiptMontoComoTexto(t *testing.T) {
	app, _ := buildApp(t, nil)
	body := `{"ticketNumber":"T-2","entryTime":"2024-01-01T10:00:00Z","amount":"7.5"}`

	resp, env := call(t, app, http.MethodPost, "/api/tickets/receipt", body, tokenForRole(t, "cajero"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc dto.DocumentResponse
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	assert.Contains(t, doc.Body, "Total: $7.50")
}

func TestTickets_CuerpoInvalido(t *testing.T) {
	app, _ := buildApp(t, nil)

	resp, env := call(t, app, http.MethodPost, "/api/tickets/receipt", `{malformado`, tokenForRole(t, "cajero"))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", env.Code)
}

func TestTickets_PrintReceiptPDF(t *testing.T) {
	app, _ := buildApp(t, func(w io.Writer) ticket.SurfaceOpener { return infrapdf.NewTicketPrinter(w) })

	resp, env := call(t, app, http.MethodPost, "/api/tickets/receipt/print", sessionBody, tokenForRole(t, "admin"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(env.Data, []byte("%PDF")))
}

func TestTickets_PrintFallidoCierraSuperficie(t *testing.T) {
	closed := 0
	app, _ := buildApp(t, func(w io.Writer) ticket.SurfaceOpener {
		return &bufferPrinter{w: w, printErr: errors.New("sin papel"), closed: &closed}
	})

	resp, env := call(t, app, http.MethodPost, "/api/tickets/ticket/print", sessionBody, tokenForRole(t, "admin"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "PRINT_FAILED", env.Code)
	assert.Equal(t, 1, closed)
}
