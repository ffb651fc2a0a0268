package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// VehicleInfoRequest datos opcionales del vehículo.
type VehicleInfoRequest struct {
	Color string `json:"color"`
	Model string `json:"model"`
	Type  string `json:"type"`
}

// ParkingSessionRequest sesión de parqueo tal como la envía el frontend.
// Amount se recibe crudo: número o texto numérico dentro de entity.MaxAmount; cualquier otra cosa
// se trata como ausente.
type ParkingSessionRequest struct {
	TicketNumber string              `json:"ticketNumber"`
	EntryTime    string              `json:"entryTime"`
	ExitTime     string              `json:"exitTime"`
	LicensePlate string              `json:"licensePlate"`
	VehicleInfo  *VehicleInfoRequest `json:"vehicleInfo"`
	CreatedBy    string              `json:"createdBy"`
	Duration     string              `json:"duration"`
	Amount       json.RawMessage     `json:"amount"`
}

// ToEntity convierte la petición en la sesión de dominio.
func (r ParkingSessionRequest) ToEntity() entity.ParkingSession {
	s := entity.ParkingSession{
		TicketNumber: r.TicketNumber,
		EntryTime:    r.EntryTime,
		ExitTime:     r.ExitTime,
		LicensePlate: r.LicensePlate,
		CreatedBy:    r.CreatedBy,
		Duration:     r.Duration,
		Amount:       parseAmount(r.Amount),
	}
	if r.VehicleInfo != nil {
		s.VehicleInfo = &entity.VehicleInfo{
			Color: r.VehicleInfo.Color,
			Model: r.VehicleInfo.Model,
			Type:  r.VehicleInfo.Type,
		}
	}
	return s
}

func parseAmount(raw json.RawMessage) *decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	} else {
		text = string(raw)
	}
	d, err := decimal.NewFromString(text)
	if err != nil || !entity.AmountInRange(d) {
		return nil
	}
	return &d
}

// DocumentResponse documento de ticket/recibo renderizado.
type DocumentResponse struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
