package http

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/ticket"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

// PrinterFactory crea una impresora que escribe la salida en w.
type PrinterFactory func(w io.Writer) ticket.SurfaceOpener

type renderFunc func(entity.ParkingSession) ticket.Document

// TicketHandler renderiza e imprime tickets y recibos.
type TicketHandler struct {
	newPrinter PrinterFactory
	log        *logger.Logger
}

// NewTicketHandler construye el handler con la fábrica de superficies de impresión.
func NewTicketHandler(newPrinter PrinterFactory, log *logger.Logger) *TicketHandler {
	return &TicketHandler{newPrinter: newPrinter, log: log}
}

// Ticket godoc
// @Summary      Renderizar ticket de entrada
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/tickets/ticket [post]
func (h *TicketHandler) Ticket(c *fiber.Ctx) error {
	return h.render(c, ticket.RenderTicket)
}

// Receipt godoc
// @Summary      Renderizar recibo de pago
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/tickets/receipt [post]
func (h *TicketHandler) Receipt(c *fiber.Ctx) error {
	return h.render(c, ticket.RenderReceipt)
}

// PrintTicket godoc
// @Summary      Imprimir ticket de entrada (PDF)
// @Tags         tickets
// @Accept       json
// @Produce      application/pdf
// @Router       /api/tickets/ticket/print [post]
func (h *TicketHandler) PrintTicket(c *fiber.Ctx) error {
	return h.print(c, ticket.RenderTicket)
}

// PrintReceipt godoc
// @Summary      Imprimir recibo de pago (PDF)
// @Tags         tickets
// @Accept       json
// @Produce      application/pdf
// @Router       /api/tickets/receipt/print [post]
func (h *TicketHandler) PrintReceipt(c *fiber.Ctx) error {
	return h.print(c, ticket.RenderReceipt)
}

func (h *TicketHandler) render(c *fiber.Ctx, fn renderFunc) error {
	session, err := parseSession(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	doc := fn(session)
	return c.JSON(dto.OK(dto.DocumentResponse{Title: doc.Title, Body: doc.Body}, ""))
}

func (h *TicketHandler) print(c *fiber.Ctx, fn renderFunc) error {
	session, err := parseSession(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	doc := fn(session)

	var buf bytes.Buffer
	if err := ticket.Present(c.UserContext(), h.newPrinter(&buf), doc); err != nil {
		h.log.Error().Err(err).Str("ticket", session.TicketNumber).Msg("impresión fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("PRINT_FAILED", "no se pudo imprimir el documento"))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, fileName(doc.Title)))
	return c.Send(buf.Bytes())
}

func parseSession(c *fiber.Ctx) (entity.ParkingSession, error) {
	var in dto.ParkingSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return entity.ParkingSession{}, err
	}
	return in.ToEntity(), nil
}

// fileName deja solo caracteres seguros para la cabecera.
func fileName(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "documento"
	}
	return string(out)
}
