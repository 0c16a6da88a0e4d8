package service

import (
	"context"
	"testing"

	"tienda/internal/dto"
	"tienda/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersonaService(t *testing.T) PersonaService {
	t.Helper()
	return NewPersonaService(repository.NewPersonaRepository(setupTestDB(t)))
}

func strPtr(s string) *string { return &s }

func TestCrearPersona(t *testing.T) {
	svc := newPersonaService(t)

	resp, err := svc.Crear(context.Background(), dto.CrearPersonaRequest{
		Nombre:   "Ana",
		Apellido: "García",
		Email:    "ana@test.com",
		Telefono: strPtr("123456"),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Ana García", resp.NombreCompleto)
	require.NotNil(t, resp.Telefono)
	assert.Equal(t, "123456", *resp.Telefono)
}

func TestCrearPersonaEmailDuplicado(t *testing.T) {
	svc := newPersonaService(t)

	req := dto.CrearPersonaRequest{Nombre: "Ana", Apellido: "García", Email: "ana@test.com"}
	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	req.Nombre = "Otra"
	_, err = svc.Crear(context.Background(), req)
	require.Error(t, err)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Campo)
	assert.Equal(t, "ana@test.com", conflict.Valor)
}

func TestActualizarPersonaParcial(t *testing.T) {
	svc := newPersonaService(t)

	creada, err := svc.Crear(context.Background(), dto.CrearPersonaRequest{
		Nombre: "Ana", Apellido: "García", Email: "ana@test.com",
	})
	require.NoError(t, err)

	// Only nombre submitted: apellido and email stay untouched.
	resp, err := svc.Actualizar(context.Background(), creada.ID, dto.ActualizarPersonaRequest{
		Nombre: strPtr("Analía"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Analía", resp.Nombre)
	assert.Equal(t, "García", resp.Apellido)
	assert.Equal(t, "ana@test.com", resp.Email)
}

func TestActualizarPersonaEmailEnUso(t *testing.T) {
	svc := newPersonaService(t)

	_, err := svc.Crear(context.Background(), dto.CrearPersonaRequest{
		Nombre: "Ana", Apellido: "García", Email: "ana@test.com",
	})
	require.NoError(t, err)
	otra, err := svc.Crear(context.Background(), dto.CrearPersonaRequest{
		Nombre: "Luis", Apellido: "Pérez", Email: "luis@test.com",
	})
	require.NoError(t, err)

	_, err = svc.Actualizar(context.Background(), otra.ID, dto.ActualizarPersonaRequest{
		Email: strPtr("ana@test.com"),
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestBuscarPersonaPorEmail(t *testing.T) {
	svc := newPersonaService(t)

	_, err := svc.Crear(context.Background(), dto.CrearPersonaRequest{
		Nombre: "Ana", Apellido: "García", Email: "ana@test.com",
	})
	require.NoError(t, err)

	resp, err := svc.BuscarPorEmail(context.Background(), "ana@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Nombre)

	_, err = svc.BuscarPorEmail(context.Background(), "nadie@test.com")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "nadie@test.com")
}

func TestEliminarPersonaInexistente(t *testing.T) {
	svc := newPersonaService(t)

	err := svc.Eliminar(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestBuscarPersonaInexistente(t *testing.T) {
	svc := newPersonaService(t)

	_, err := svc.BuscarPorID(context.Background(), 123)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCicloCrudPersona(t *testing.T) {
	svc := newPersonaService(t)

	creada, err := svc.Crear(context.Background(), dto.CrearPersonaRequest{
		Nombre: "Eva", Apellido: "Ruiz", Email: "eva@test.com",
	})
	require.NoError(t, err)

	todas, err := svc.ListarTodas(context.Background())
	require.NoError(t, err)
	assert.Len(t, todas, 1)

	require.NoError(t, svc.Eliminar(context.Background(), creada.ID))

	todas, err = svc.ListarTodas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todas)
}
