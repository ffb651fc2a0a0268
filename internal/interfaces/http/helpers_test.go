package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/auth"
	"github.com/jhoicas/Parqueadero-api/internal/application/ticket"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
	"github.com/jhoicas/Parqueadero-api/internal/application/validation"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Parqueadero-api/internal/interfaces/http"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

// memoryCompanies repositorio en memoria con slug único.
type memoryCompanies struct {
	mu   sync.Mutex
	byID map[string]entity.Company
}

func newMemoryCompanies() *memoryCompanies {
	return &memoryCompanies{byID: map[string]entity.Company{}}
}

func (m *memoryCompanies) slugTaken(slug, exceptID string) bool {
	for id, c := range m.byID {
		if c.Slug == slug && id != exceptID {
			return true
		}
	}
	return false
}

func (m *memoryCompanies) Create(_ context.Context, c *entity.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.slugTaken(c.Slug, "") {
		return domain.ErrDuplicate
	}
	m.byID[c.ID] = *c
	return nil
}

func (m *memoryCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memoryCompanies) Update(_ context.Context, c *entity.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if m.slugTaken(c.Slug, c.ID) {
		return domain.ErrDuplicate
	}
	m.byID[c.ID] = *c
	return nil
}

func (m *memoryCompanies) List(context.Context) ([]*entity.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Company, 0, len(m.byID))
	for _, c := range m.byID {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (m *memoryCompanies) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type noProfiles struct{}

func (noProfiles) GetByEmail(context.Context, string) (*entity.Profile, error) { return nil, nil }
func (noProfiles) GetByID(context.Context, string) (*entity.Profile, error)    { return nil, nil }

type noRoles struct{}

func (noRoles) GetByUserID(context.Context, string) (*entity.RoleBinding, error) { return nil, nil }
func (noRoles) Create(context.Context, *entity.RoleBinding) error               { return nil }
func (noRoles) UpdateRole(context.Context, *entity.RoleBinding) error           { return nil }

// buildApp monta el router completo sobre repositorios en memoria.
func buildApp(t *testing.T, printer apphttp.PrinterFactory) (*fiber.App, *memoryCompanies) {
	t.Helper()
	repo := newMemoryCompanies()
	if printer == nil {
		printer = func(w io.Writer) ticket.SurfaceOpener { return &bufferPrinter{w: w} }
	}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(repo, validation.NewCompanyValidator()),
		AuthUC:     auth.NewAuthUseCase(noProfiles{}, noRoles{}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5}),
		NewPrinter: printer,
		JWTSecret:  testJWTSecret,
		Log:        logger.Nop(),
	})
	return app, repo
}

// envelope forma genérica de las respuestas.
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Code    string              `json:"code"`
}

func call(t *testing.T, app *fiber.App, method, path, body, authHeader string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	} else {
		env.Data = raw
	}
	return resp, env
}
