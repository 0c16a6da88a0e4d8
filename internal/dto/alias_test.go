package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalPersonaNombresCanonicos(t *testing.T) {
	var req CrearPersonaRequest
	err := json.Unmarshal([]byte(`{"nombre":"Ana","apellido":"García","email":"ana@test.com"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "Ana", req.Nombre)
	assert.Equal(t, "García", req.Apellido)
}

func TestUnmarshalPersonaAliasLegados(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"camelCase", `{"pNombre":"Ana","pApellido":"García","pEmail":"ana@test.com"}`},
		{"mayusculas", `{"P_NOMBRE":"Ana","P_APELLIDO":"García","P_EMAIL":"ana@test.com"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CrearPersonaRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, "Ana", req.Nombre)
			assert.Equal(t, "García", req.Apellido)
			assert.Equal(t, "ana@test.com", req.Email)
		})
	}
}

func TestUnmarshalCanonicoGanaSobreAlias(t *testing.T) {
	var req CrearPersonaRequest
	body := `{"nombre":"Canónico","pNombre":"Legado","apellido":"X","email":"x@test.com"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "Canónico", req.Nombre)
}

func TestUnmarshalProductoConAlias(t *testing.T) {
	var req CrearProductoRequest
	body := `{"pNombre":"Yerba","pPrecio":"19.99","pStock":10}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "Yerba", req.Nombre)
	assert.True(t, req.Precio.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 10, req.Stock)
}

func TestUnmarshalVentaConAliasAnidados(t *testing.T) {
	var req CrearVentaRequest
	body := `{
		"pId": 1,
		"pvId": 2,
		"detalles": [
			{"pId": 3, "vdCantidad": 4, "vdPrecioUnitario": "2.50"}
		]
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, uint(1), req.PersonaID)
	assert.Equal(t, uint(2), req.PuntoDeVentaID)
	require.Len(t, req.Detalles, 1)
	assert.Equal(t, uint(3), req.Detalles[0].ProductoID)
	assert.Equal(t, 4, req.Detalles[0].Cantidad)
	require.NotNil(t, req.Detalles[0].PrecioUnitario)
	assert.True(t, req.Detalles[0].PrecioUnitario.Equal(decimal.RequireFromString("2.50")))
}

func TestUnmarshalPuntoVentaAliasUbicacion(t *testing.T) {
	var req CrearPuntoVentaRequest
	body := `{"pvNombre":"Sucursal 1","uId":7}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "Sucursal 1", req.Nombre)
	assert.Equal(t, uint(7), req.UbicacionID)
}
