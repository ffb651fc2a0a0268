package entity

import "time"

// Company representa una empresa operadora de parqueaderos (tenant del sistema).
type Company struct {
	ID           string
	Name         string
	Slug         string // derivado de Name, único
	ContactEmail string
	ContactPhone string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string
	Description  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
