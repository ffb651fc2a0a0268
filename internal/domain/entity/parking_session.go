package entity

import "github.com/shopspring/decimal"

// VehicleInfo datos opcionales del vehículo; los campos vacíos se consideran ausentes.
type VehicleInfo struct {
	Color string
	Model string
	Type  string
}

// ParkingSession es el registro de una estadía tal como lo consume el renderizado de tickets.
// No se persiste en este servicio; se recibe por valor y nunca se modifica.
type ParkingSession struct {
	TicketNumber string
	EntryTime    string
	ExitTime     string // vacío hasta el checkout
	LicensePlate string
	VehicleInfo  *VehicleInfo
	CreatedBy    string
	Duration     string           // solo al emitir recibo
	Amount       *decimal.Decimal // solo al emitir recibo; nil si ausente o no numérico
}

// Límites de un monto imprimible. Fuera de ellos el monto se trata como ausente.
const (
	maxAmountExponent = 12
	minAmountExponent = -20
	maxAmountDigits   = 40
)

// MaxAmount es el mayor valor absoluto aceptado como monto de un recibo.
var MaxAmount = decimal.New(1, maxAmountExponent)

// AmountInRange informa si d se puede formatear sin costo desproporcionado. Revisa exponente y
// dígitos antes de comparar, porque comparar o redondear un exponente enorme materializa cada dígito.
func AmountInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > maxAmountExponent || exp < minAmountExponent {
		return false
	}
	if d.NumDigits() > maxAmountDigits {
		return false
	}
	return d.Abs().LessThanOrEqual(MaxAmount)
}
