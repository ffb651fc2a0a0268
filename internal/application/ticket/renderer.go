// Package ticket transforma sesiones de parqueo en documentos de ancho fijo (ticket de entrada y
// recibo de pago) y los presenta sobre una superficie de impresión.
//
// Layout del ticket (32 columnas, las líneas opcionales se omiten si el dato no existe):
//
//	================================
//	   TICKET DE ESTACIONAMIENTO
//	================================
//	Ticket: T-1
//	Placa: ABC123
//	Entrada: 01/01/2024 10:00
//	--------------------------------
//	Color: Rojo
//	Modelo: Mazda 3
//	Tipo: No especificado
//	--------------------------------
//	Atendido por: caja-1
//	   Conserve este ticket para
//	      retirar su vehículo
//	================================
package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// Width ancho en columnas del cuerpo monoespaciado.
const Width = 32

const (
	ticketHeading    = "TICKET DE ESTACIONAMIENTO"
	receiptHeading   = "RECIBO DE PAGO"
	unspecifiedType  = "No especificado"
	displayTimeFmt   = "02/01/2006 15:04"
	ticketFooterLine = "Conserve este ticket para"
	ticketFooterEnd  = "retirar su vehículo"
	receiptFooter    = "Gracias por su visita"
)

// Document es el resultado del renderizado: título y cuerpo de ancho fijo.
type Document struct {
	Title string
	Body  string
	Width int
}

// Lines devuelve el cuerpo línea por línea.
func (d Document) Lines() []string {
	return strings.Split(d.Body, "\n")
}

// acceptedTimeLayouts formatos de fecha que se reformatean; cualquier otro se imprime tal cual.
var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// RenderTicket genera el ticket de entrada. Es puro y nunca falla.
func RenderTicket(s entity.ParkingSession) Document {
	var b builder
	b.rule('=')
	b.center(ticketHeading)
	b.rule('=')
	b.field("Ticket", s.TicketNumber)
	b.field("Placa", s.LicensePlate)
	b.field("Entrada", displayTime(s.EntryTime))
	b.rule('-')
	b.vehicle(s.VehicleInfo)
	b.rule('-')
	b.optional("Atendido por", s.CreatedBy)
	b.center(ticketFooterLine)
	b.center(ticketFooterEnd)
	b.rule('=')
	return Document{Title: "Ticket " + s.TicketNumber, Body: b.String(), Width: Width}
}

// RenderReceipt genera el recibo de pago con el total a dos decimales.
// Un monto ausente se imprime como $0.00.
func RenderReceipt(s entity.ParkingSession) Document {
	var b builder
	b.rule('=')
	b.center(receiptHeading)
	b.rule('=')
	b.field("Ticket", s.TicketNumber)
	b.field("Placa", s.LicensePlate)
	b.field("Entrada", displayTime(s.EntryTime))
	b.optional("Salida", displayTime(s.ExitTime))
	b.optional("Duración", duration(s))
	b.rule('-')
	b.vehicle(s.VehicleInfo)
	b.rule('-')
	b.field("Total", FormatAmount(s.Amount))
	b.optional("Atendido por", s.CreatedBy)
	b.rule('=')
	b.center(receiptFooter)
	b.rule('=')
	return Document{Title: "Recibo " + s.TicketNumber, Body: b.String(), Width: Width}
}

// FormatAmount formatea el monto con símbolo y exactamente dos decimales. Ej: 12.5 → "$12.50".
// Un monto ausente o fuera de rango se imprime como $0.00.
func FormatAmount(amount *decimal.Decimal) string {
	if amount == nil || !entity.AmountInRange(*amount) {
		return "$" + decimal.Zero.StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// displayTime reformatea fechas reconocidas; vacío queda vacío.
func displayTime(raw string) string {
	if t, ok := parseTime(raw); ok {
		return t.Format(displayTimeFmt)
	}
	return strings.TrimSpace(raw)
}

func parseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// duration usa la duración recibida o la deriva de entrada/salida cuando ambas se reconocen.
func duration(s entity.ParkingSession) string {
	if d := strings.TrimSpace(s.Duration); d != "" {
		return d
	}
	entry, ok := parseTime(s.EntryTime)
	if !ok {
		return ""
	}
	exit, ok := parseTime(s.ExitTime)
	if !ok || exit.Before(entry) {
		return ""
	}
	mins := int(exit.Sub(entry).Minutes())
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}

type builder struct {
	lines []string
}

func (b *builder) rule(ch rune) {
	b.lines = append(b.lines, strings.Repeat(string(ch), Width))
}

func (b *builder) center(s string) {
	pad := (Width - utf8.RuneCountInString(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.lines = append(b.lines, strings.Repeat(" ", pad)+s)
}

func (b *builder) field(label, value string) {
	b.lines = append(b.lines, label+": "+strings.TrimSpace(value))
}

func (b *builder) optional(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.field(label, value)
}

// vehicle omite color y modelo ausentes; el tipo siempre aparece.
func (b *builder) vehicle(v *entity.VehicleInfo) {
	vehicleType := unspecifiedType
	if v != nil {
		b.optional("Color", v.Color)
		b.optional("Modelo", v.Model)
		if t := strings.TrimSpace(v.Type); t != "" {
			vehicleType = t
		}
	}
	b.field("Tipo", vehicleType)
}

func (b *builder) String() string {
	return strings.Join(b.lines, "\n")
}
