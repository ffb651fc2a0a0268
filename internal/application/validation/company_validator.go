// Package validation valida payloads crudos contra las reglas de cada recurso.
//
// Cada campo conocido se decodifica por separado para que un error de tipo en un campo no
// oculte los errores de los demás: se acumulan todas las violaciones antes de fallar.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/pkg/slug"
)

// Mode selecciona las reglas de presencia.
type Mode int

const (
	// ModeCreate exige todos los campos requeridos.
	ModeCreate Mode = iota
	// ModeUpdate valida solo los campos presentes ("sometimes"): ausente = no se toca.
	ModeUpdate
)

// Campos del payload de Company (claves JSON).
const (
	FieldName         = "name"
	FieldContactEmail = "contact_email"
	FieldContactPhone = "contact_phone"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldState        = "state"
	FieldZipCode      = "zip_code"
	FieldCountry      = "country"
	FieldDescription  = "description"
	FieldIsActive     = "is_active"
)

// Clave usada cuando el cuerpo completo es inválido.
const FieldBody = "_body"

// CompanyInput payload saneado (textos sin espacios en los extremos). Solo los campos con Has(campo) == true fueron enviados.
type CompanyInput struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string
	Description  string
	IsActive     bool

	present map[string]bool
}

// Has informa si el campo vino en el payload (aunque fuera null o vacío).
func (in *CompanyInput) Has(field string) bool {
	return in.present[field]
}

type stringRule struct {
	field    string
	tag      string
	required bool
	target   func(in *CompanyInput) *string
}

var companyStringRules = []stringRule{
	{FieldName, "required,max=255", true, func(in *CompanyInput) *string { return &in.Name }},
	{FieldContactEmail, "required,email,max=255", true, func(in *CompanyInput) *string { return &in.ContactEmail }},
	{FieldContactPhone, "max=20", false, func(in *CompanyInput) *string { return &in.ContactPhone }},
	{FieldAddress, "max=255", false, func(in *CompanyInput) *string { return &in.Address }},
	{FieldCity, "max=100", false, func(in *CompanyInput) *string { return &in.City }},
	{FieldState, "max=100", false, func(in *CompanyInput) *string { return &in.State }},
	{FieldZipCode, "max=20", false, func(in *CompanyInput) *string { return &in.ZipCode }},
	{FieldCountry, "max=100", false, func(in *CompanyInput) *string { return &in.Country }},
	{FieldDescription, "", false, func(in *CompanyInput) *string { return &in.Description }},
}

// CompanyValidator aplica las reglas del recurso Company.
type CompanyValidator struct {
	v *validator.Validate
}

// NewCompanyValidator construye el validador.
func NewCompanyValidator() *CompanyValidator {
	return &CompanyValidator{v: validator.New()}
}

// Validate decodifica y valida raw. Devuelve *domain.ValidationError con todas las violaciones
// o el payload saneado; nunca ambos.
func (cv *CompanyValidator) Validate(raw []byte, mode Mode) (*CompanyInput, error) {
	verr := domain.NewValidationError()

	fields, err := decodeObject(raw)
	if err != nil {
		verr.Add(FieldBody, "El cuerpo de la petición debe ser un objeto JSON.")
		return nil, verr
	}

	in := &CompanyInput{IsActive: true, present: make(map[string]bool, len(fields))}
	for key := range fields {
		in.present[key] = true
	}

	for _, rule := range companyStringRules {
		value, ok := fields[rule.field]
		if !ok {
			if mode == ModeCreate && rule.required {
				verr.Add(rule.field, messageFor(rule.field, "required", ""))
			}
			continue
		}
		s, typeOK := decodeString(value)
		if !typeOK {
			verr.Add(rule.field, fmt.Sprintf("El campo %s debe ser una cadena de texto.", rule.field))
			continue
		}
		s = strings.TrimSpace(s)
		*rule.target(in) = s
		if rule.tag == "" {
			continue
		}
		if err := cv.v.Var(s, rule.tag); err != nil {
			var ves validator.ValidationErrors
			if !errors.As(err, &ves) {
				return nil, fmt.Errorf("validar %s: %w", rule.field, err)
			}
			for _, fe := range ves {
				verr.Add(rule.field, messageFor(rule.field, fe.Tag(), fe.Param()))
			}
			continue
		}
		// El nombre debe producir un slug no vacío.
		if rule.field == FieldName && slug.Make(s) == "" {
			verr.Add(rule.field, fmt.Sprintf("El campo %s debe contener al menos una letra o un número.", rule.field))
		}
	}

	if value, ok := fields[FieldIsActive]; ok {
		b, boolOK := coerceBool(value)
		if !boolOK {
			verr.Add(FieldIsActive, fmt.Sprintf("El campo %s debe ser verdadero o falso.", FieldIsActive))
		} else {
			in.IsActive = b
		}
	}

	if !verr.Empty() {
		return nil, verr
	}
	return in, nil
}

func decodeObject(raw []byte) (map[string]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errors.New("se esperaba un objeto JSON")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// decodeString acepta texto o null (null equivale a vacío).
func decodeString(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// coerceBool acepta true/false, 1/0, "1"/"0" y "true"/"false".
func coerceBool(raw json.RawMessage) (bool, bool) {
	switch strings.TrimSpace(string(raw)) {
	case "true", "1", `"1"`, `"true"`:
		return true, true
	case "false", "0", `"0"`, `"false"`:
		return false, true
	}
	return false, false
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func messageFor(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", field)
	case "email":
		return fmt.Sprintf("El campo %s debe ser una dirección de correo válida.", field)
	case "max":
		return fmt.Sprintf("El campo %s no debe superar %s caracteres.", field, param)
	default:
		return fmt.Sprintf("El campo %s no es válido.", field)
	}
}
