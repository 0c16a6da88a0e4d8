package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda/internal/model"
	"tienda/internal/repository"
	"tienda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPersonasRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Persona{}))

	h := NewPersonasHandler(service.NewPersonaService(repository.NewPersonaRepository(db)))

	r := gin.New()
	r.POST("/api/personas", h.Crear)
	r.GET("/api/personas", h.ListarTodas)
	r.GET("/api/personas/email/:email", h.BuscarPorEmail)
	r.GET("/api/personas/:id", h.BuscarPorID)
	r.PUT("/api/personas/:id", h.Actualizar)
	r.DELETE("/api/personas/:id", h.Eliminar)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCrearPersonaHandler(t *testing.T) {
	r := setupPersonasRouter(t)

	w := doRequest(r, http.MethodPost, "/api/personas",
		`{"nombre":"Ana","apellido":"García","email":"ana@test.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"nombreCompleto":"Ana García"`)
}

func TestCrearPersonaHandlerConAliasLegados(t *testing.T) {
	r := setupPersonasRouter(t)

	w := doRequest(r, http.MethodPost, "/api/personas",
		`{"P_NOMBRE":"Ana","P_APELLIDO":"García","P_EMAIL":"ana@test.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCrearPersonaHandlerValidacion(t *testing.T) {
	r := setupPersonasRouter(t)

	// Missing apellido and malformed email.
	w := doRequest(r, http.MethodPost, "/api/personas",
		`{"nombre":"Ana","email":"no-es-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"fields"`)
}

func TestCrearPersonaHandlerJSONInvalido(t *testing.T) {
	r := setupPersonasRouter(t)

	w := doRequest(r, http.MethodPost, "/api/personas", `{"nombre":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestCrearPersonaHandlerEmailDuplicado(t *testing.T) {
	r := setupPersonasRouter(t)

	body := `{"nombre":"Ana","apellido":"García","email":"ana@test.com"}`
	w := doRequest(r, http.MethodPost, "/api/personas", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same email again: conflict reported as a request-level 400.
	w = doRequest(r, http.MethodPost, "/api/personas", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ya está registrado")
}

func TestBuscarPersonaHandlerInexistente(t *testing.T) {
	r := setupPersonasRouter(t)

	w := doRequest(r, http.MethodGet, "/api/personas/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no encontrado")
}

func TestBuscarPersonaPorEmailHandler(t *testing.T) {
	r := setupPersonasRouter(t)

	w := doRequest(r, http.MethodPost, "/api/personas",
		`{"nombre":"Ana","apellido":"García","email":"ana@test.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api/personas/email/ana@test.com", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nombreCompleto":"Ana García"`)

	w = doRequest(r, http.MethodGet, "/api/personas/email/nadie@test.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no encontrado")
}

func TestPersonaHandlerIDInvalido(t *testing.T) {
	r := setupPersonasRouter(t)

	w := doRequest(r, http.MethodGet, "/api/personas/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID invalido")
}

func TestEliminarPersonaHandler(t *testing.T) {
	r := setupPersonasRouter(t)

	w := doRequest(r, http.MethodPost, "/api/personas",
		`{"nombre":"Eva","apellido":"Ruiz","email":"eva@test.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/personas/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eliminada exitosamente")

	w = doRequest(r, http.MethodDelete, "/api/personas/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
