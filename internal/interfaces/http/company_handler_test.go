package http_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
)

func TestCompanies_CicloDeVida(t *testing.T) {
	app, repo := buildApp(t, nil)

	resp, env := call(t, app, http.MethodPost, "/api/companies", `{"name":"Café Ñandú Norte","contact_email":"ops@nandu.co"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "Empresa creada correctamente", env.Message)
	var created dto.CompanyResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "cafe-nandu-norte", created.Slug)
	assert.True(t, created.IsActive)

	resp, env = call(t, app, http.MethodGet, "/api/companies/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = call(t, app, http.MethodPatch, "/api/companies/"+created.ID, `{"city":"Cali"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Empresa actualizada correctamente", env.Message)
	var updated dto.CompanyResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Cali", updated.City)
	assert.Equal(t, "cafe-nandu-norte", updated.Slug)

	resp, env = call(t, app, http.MethodPut, "/api/companies/"+created.ID, `{"name":"Sede Sur"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "sede-sur", updated.Slug)

	resp, env = call(t, app, http.MethodDelete, "/api/companies/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Empresa eliminada correctamente", env.Message)
	assert.Empty(t, repo.byID)

	resp, env = call(t, app, http.MethodDelete, "/api/companies/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "eliminar dos veces no es idempotente")
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestCompanies_CrearInvalidoDevuelve422(t *testing.T) {
	app, repo := buildApp(t, nil)

	resp, env := call(t, app, http.MethodPost, "/api/companies",
		`{"name":"`+strings.Repeat("x", 256)+`","contact_email":"no-es-email"}`, "")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "contact_email")
	assert.Empty(t, repo.byID, "nada debe persistirse")
}

func TestCompanies_SlugDuplicadoDevuelve422(t *testing.T) {
	app, _ := buildApp(t, nil)
	resp, _ := call(t, app, http.MethodPost, "/api/companies", `{"name":"Central","contact_email":"a@b.co"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := call(t, app, http.MethodPost, "/api/companies", `{"name":"CENTRAL","contact_email":"c@d.co"}`, "")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Errors, "name")
}

func TestCompanies_ListaVaciaEsArreglo(t *testing.T) {
	app, _ := buildApp(t, nil)

	resp, env := call(t, app, http.MethodGet, "/api/companies", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestCompanies_ObtenerInexistente(t *testing.T) {
	app, _ := buildApp(t, nil)

	resp, env := call(t, app, http.MethodGet, "/api/companies/nope", "", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Empresa no encontrada", env.Message)
}

func TestCompanies_ActualizarInexistenteEs404AntesQue422(t *testing.T) {
	app, _ := buildApp(t, nil)

	resp, _ := call(t, app, http.MethodPut, "/api/companies/nope", `{"name":""}`, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app, _ := buildApp(t, nil)

	resp, env := call(t, app, http.MethodPost, "/api/auth/login", `{"email":"x@y.co","password":"123"}`, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
}
