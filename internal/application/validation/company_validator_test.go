package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/validation"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
)

func validationFields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba *domain.ValidationError, se obtuvo %v", err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return verr.Fields
}

func TestValidate_CreateValido(t *testing.T) {
	v := validation.NewCompanyValidator()

	in, err := v.Validate([]byte(`{
		"name": "Parqueadero Central",
		"contact_email": "ops@central.co",
		"city": "Medellín",
		"unknown": 42
	}`), validation.ModeCreate)

	require.NoError(t, err)
	assert.Equal(t, "Parqueadero Central", in.Name)
	assert.Equal(t, "ops@central.co", in.ContactEmail)
	assert.Equal(t, "Medellín", in.City)
	assert.True(t, in.IsActive, "is_active debe ser true por defecto")
	assert.True(t, in.Has(validation.FieldCity))
	assert.False(t, in.Has(validation.FieldCountry))
}

func TestValidate_CreateAcumulaTodosLosErrores(t *testing.T) {
	v := validation.NewCompanyValidator()

	_, err := v.Validate([]byte(`{
		"name": "",
		"contact_email": "no-es-email",
		"zip_code": "123456789012345678901",
		"is_active": "quizás"
	}`), validation.ModeCreate)

	fields := validationFields(t, err)
	assert.Contains(t, fields, validation.FieldName)
	assert.Contains(t, fields, validation.FieldContactEmail)
	assert.Contains(t, fields, validation.FieldZipCode)
	assert.Contains(t, fields, validation.FieldIsActive)
	assert.Equal(t, []string{"El campo name es obligatorio."}, fields[validation.FieldName])
}

func TestValidate_CreateNombreDemasiadoLargo(t *testing.T) {
	v := validation.NewCompanyValidator()

	_, err := v.Validate([]byte(`{"name":"`+strings.Repeat("a", 256)+`","contact_email":"a@b.co"}`), validation.ModeCreate)

	fields := validationFields(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"El campo name no debe superar 255 caracteres."}, fields[validation.FieldName])
}

func TestValidate_CreateCamposRequeridosAusentes(t *testing.T) {
	v := validation.NewCompanyValidator()

	_, err := v.Validate([]byte(`{}`), validation.ModeCreate)

	fields := validationFields(t, err)
	assert.Len(t, fields, 2)
	assert.Contains(t, fields, validation.FieldName)
	assert.Contains(t, fields, validation.FieldContactEmail)
}

func TestValidate_ErrorDeTipoNoOcultaOtrosCampos(t *testing.T) {
	v := validation.NewCompanyValidator()

	_, err := v.Validate([]byte(`{"name": 123, "contact_email": ["x"], "city": "Cali"}`), validation.ModeCreate)

	fields := validationFields(t, err)
	assert.Equal(t, []string{"El campo name debe ser una cadena de texto."}, fields[validation.FieldName])
	assert.Equal(t, []string{"El campo contact_email debe ser una cadena de texto."}, fields[validation.FieldContactEmail])
	assert.NotContains(t, fields, validation.FieldCity)
}

func TestValidate_UpdateSoloCamposPresentes(t *testing.T) {
	v := validation.NewCompanyValidator()

	in, err := v.Validate([]byte(`{"city": "Bogotá"}`), validation.ModeUpdate)

	require.NoError(t, err, "en Update los requeridos ausentes no se exigen")
	assert.True(t, in.Has(validation.FieldCity))
	assert.False(t, in.Has(validation.FieldName))
	assert.False(t, in.Has(validation.FieldContactEmail))
}

func TestValidate_UpdateCampoPresenteUsaMismaRegla(t *testing.T) {
	v := validation.NewCompanyValidator()

	_, err := v.Validate([]byte(`{"name": "", "contact_email": null}`), validation.ModeUpdate)

	fields := validationFields(t, err)
	assert.Contains(t, fields, validation.FieldName, "name enviado vacío debe fallar como en Create")
	assert.Contains(t, fields, validation.FieldContactEmail, "contact_email enviado null debe fallar")
}

func TestValidate_OpcionalNullEsVacio(t *testing.T) {
	v := validation.NewCompanyValidator()

	in, err := v.Validate([]byte(`{"description": null}`), validation.ModeUpdate)

	require.NoError(t, err)
	assert.True(t, in.Has(validation.FieldDescription), "null enviado cuenta como presente")
	assert.Equal(t, "", in.Description)
}

func TestValidate_CoercionBooleana(t *testing.T) {
	v := validation.NewCompanyValidator()

	cases := map[string]bool{
		`true`: true, `false`: false, `1`: true, `0`: false,
		`"1"`: true, `"0"`: false, `"true"`: true, `"false"`: false,
	}
	for raw, want := range cases {
		in, err := v.Validate([]byte(`{"is_active": `+raw+`}`), validation.ModeUpdate)
		require.NoError(t, err, raw)
		assert.Equal(t, want, in.IsActive, raw)
	}

	for _, raw := range []string{`"si"`, `2`, `null`, `{}`} {
		_, err := v.Validate([]byte(`{"is_active": `+raw+`}`), validation.ModeUpdate)
		fields := validationFields(t, err)
		assert.Contains(t, fields, validation.FieldIsActive, raw)
	}
}

func TestValidate_CuerpoNoObjeto(t *testing.T) {
	v := validation.NewCompanyValidator()

	for _, raw := range []string{``, `[]`, `"texto"`, `{malformado`} {
		_, err := v.Validate([]byte(raw), validation.ModeCreate)
		fields := validationFields(t, err)
		assert.Contains(t, fields, validation.FieldBody, raw)
	}
}

func TestValidate_NombreSoloEspaciosEsObligatorio(t *testing.T) {
	v := validation.NewCompanyValidator()

	for _, mode := range []validation.Mode{validation.ModeCreate, validation.ModeUpdate} {
		_, err := v.Validate([]byte(`{"name":"   ","contact_email":"a@b.co"}`), mode)

		fields := validationFields(t, err)
		assert.Equal(t, []string{"El campo name es obligatorio."}, fields[validation.FieldName])
	}
}

func TestValidate_NombreSinLetrasNiNumeros(t *testing.T) {
	v := validation.NewCompanyValidator()

	_, err := v.Validate([]byte(`{"name":"¡¿--?!","contact_email":"a@b.co"}`), validation.ModeCreate)

	fields := validationFields(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"El campo name debe contener al menos una letra o un número."}, fields[validation.FieldName])
}

func TestValidate_RecortaEspacios(t *testing.T) {
	v := validation.NewCompanyValidator()

	in, err := v.Validate([]byte(`{"name":"  Parqueadero Sur  ","contact_email":" ops@sur.co ","city":"\tCali "}`), validation.ModeCreate)

	require.NoError(t, err)
	assert.Equal(t, "Parqueadero Sur", in.Name)
	assert.Equal(t, "ops@sur.co", in.ContactEmail)
	assert.Equal(t, "Cali", in.City)
}
