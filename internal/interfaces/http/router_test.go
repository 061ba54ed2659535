package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yggdrasil/internal/application/usecase"
	apphttp "yggdrasil/internal/interfaces/http"
	"yggdrasil/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la aplicación completa (handler + caso de uso) sobre los
// almacenes en memoria de testutil, sin PostgreSQL.
func buildTestApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(&testutil.MemCompanyRepo{}),
		UserUC:    usecase.NewUserUseCase(&testutil.MemUserRepo{}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Companies
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_CrearYObtener(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/companies", fiber.Map{
		"name": "Sony S/A", "document": "1234567890",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Location"))

	var created map[string]any
	decode(t, resp, &created)
	id, _ := created["id"].(string)
	require.Len(t, id, 24)
	assert.Equal(t, false, created["deleted"])
	assert.Nil(t, created["updated_at"])

	resp = doJSON(t, app, http.MethodGet, "/api/companies/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCompanies_DuplicadoDevuelve400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/companies", fiber.Map{"name": "Sony S/A", "document": "100"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/companies", fiber.Map{"name": "Sony S/A", "document": "200"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody map[string]string
	decode(t, resp, &errBody)
	assert.Equal(t, "DUPLICATE_DATA", errBody["code"])
	assert.NotEmpty(t, errBody["message"])
}

func TestCompanies_NoEncontrada(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/companies/tz4a98xxat96iws9zmbrgj3a", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errBody map[string]string
	decode(t, resp, &errBody)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
}

func TestCompanies_BorradoDoble(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/companies", fiber.Map{"name": "Sony S/A", "document": "100"})
	var created map[string]any
	decode(t, resp, &created)
	id := created["id"].(string)

	resp = doJSON(t, app, http.MethodDelete, "/api/companies/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// El segundo borrado debe fallar: la empresa ya está borrada
	resp = doJSON(t, app, http.MethodDelete, "/api/companies/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Y desaparece del listado de activas
	resp = doJSON(t, app, http.MethodGet, "/api/companies", nil)
	var list []map[string]any
	decode(t, resp, &list)
	assert.Empty(t, list)
}

func TestCompanies_ValidacionDeCuerpo(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/companies", fiber.Map{"name": ""})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody map[string]string
	decode(t, resp, &errBody)
	assert.Equal(t, "VALIDATION", errBody["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_CrearSinExponerPassword(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{
		"email": "a@b.com", "password": "Passw0rd!",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created map[string]any
	decode(t, resp, &created)
	assert.Equal(t, "a@b.com", created["email"])
	_, hasPassword := created["password"]
	assert.False(t, hasPassword, "la respuesta nunca debe incluir el password")
	_, hasHash := created["password_hash"]
	assert.False(t, hasHash)
}

func TestUsers_PasswordInvalida(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{
		"email": "a@b.com", "password": "LongEnough1",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody map[string]string
	decode(t, resp, &errBody)
	assert.Equal(t, "INVALID_PASSWORD", errBody["code"])
}

func TestUsers_ListadoPorEstado(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{"email": "a@b.com", "password": "Passw0rd!"})
	var created map[string]any
	decode(t, resp, &created)
	id := created["id"].(string)

	resp = doJSON(t, app, http.MethodDelete, "/api/users/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/users?status=active", nil)
	var actives []map[string]any
	decode(t, resp, &actives)
	assert.Empty(t, actives)

	resp = doJSON(t, app, http.MethodGet, "/api/users?status=inactive", nil)
	var inactives []map[string]any
	decode(t, resp, &inactives)
	require.Len(t, inactives, 1)
	assert.Equal(t, id, inactives[0]["id"])

	resp = doJSON(t, app, http.MethodGet, "/api/users?status=bogus", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUsers_UpdateSinPassword(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{"email": "a@b.com", "password": "Passw0rd!"})
	var created map[string]any
	decode(t, resp, &created)
	id := created["id"].(string)

	// Sin password en el cuerpo: no debe fallar por política de contraseñas
	resp = doJSON(t, app, http.MethodPut, "/api/users/"+id, fiber.Map{"email": "nuevo@b.com"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated map[string]any
	decode(t, resp, &updated)
	assert.Equal(t, "nuevo@b.com", updated["email"])
	assert.NotNil(t, updated["updated_at"])
}
