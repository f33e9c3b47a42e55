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
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lagerhub/internal/application/auth"
	apphttp "github.com/jhoicas/lagerhub/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/lagerhub/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsername  = "lageradmin"
	testPassword  = "correcthorsebattery"
	testIssuer    = "lagerhub-test"
	testExpMin    = 60
)

// buildProtectedApp construye una aplicación Fiber mínima con el
// AuthMiddleware y un handler dummy que devuelve el usuario autenticado.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "username": apphttp.GetUsername(c)})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoPasa(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUsername, body["username"], "el usuario del token debe llegar al handler")
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsername, testIssuer, -1)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretDistinto_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testUsername, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login — flujo completo handler + usecase
// ──────────────────────────────────────────────────────────────────────────────

func buildLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	uc := auth.NewUseCase(
		auth.Credentials{Username: testUsername, PasswordHash: string(hash)},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	)
	app := fiber.New()
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc).Login)
	return app
}

func doLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLogin_CredencialesCorrectas_EmiteTokenUsable(t *testing.T) {
	app := buildLoginApp(t)
	resp := doLogin(t, app, testUsername, testPassword)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// el token emitido debe pasar el middleware
	username, err := pkgjwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUsername, username)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildLoginApp(t)
	resp := doLogin(t, app, testUsername, "incorrecto")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UsuarioIncorrecto_Retorna401(t *testing.T) {
	app := buildLoginApp(t)
	resp := doLogin(t, app, "otro", testPassword)
	defer resp.Body.Close()

	// mismo 401 que password incorrecto: no se filtra cuál falló
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_SinCampos_Retorna400(t *testing.T) {
	app := buildLoginApp(t)
	resp := doLogin(t, app, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_SinHashConfigurado_Retorna401(t *testing.T) {
	uc := auth.NewUseCase(
		auth.Credentials{Username: testUsername, PasswordHash: ""},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	)
	app := fiber.New()
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc).Login)

	resp := doLogin(t, app, testUsername, testPassword)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin hash configurado el login queda deshabilitado")
}
