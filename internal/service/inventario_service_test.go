package service

import (
	"context"
	"testing"

	"tienda/internal/model"
	"tienda/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservarDescuentaYDevuelveRestante(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductoRepository(db)
	svc := NewInventarioService(repo)

	p := model.Producto{Nombre: "Yerba", Precio: decimal.RequireFromString("19.99"), Stock: 10}
	require.NoError(t, db.Create(&p).Error)

	restante, err := svc.Reservar(context.Background(), nil, p.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, restante)

	var leido model.Producto
	require.NoError(t, db.First(&leido, p.ID).Error)
	assert.Equal(t, 6, leido.Stock)
}

func TestReservarCantidadInvalida(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventarioService(repository.NewProductoRepository(db))

	_, err := svc.Reservar(context.Background(), nil, 1, 0)
	assert.ErrorIs(t, err, ErrCantidadInvalida)
	_, err = svc.Reservar(context.Background(), nil, 1, -3)
	assert.ErrorIs(t, err, ErrCantidadInvalida)
}

func TestReservarProductoInexistente(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventarioService(repository.NewProductoRepository(db))

	_, err := svc.Reservar(context.Background(), nil, 77, 1)
	require.Error(t, err)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, uint(77), nf.ID)
}

func TestReservarStockInsuficienteNoMutaNada(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductoRepository(db)
	svc := NewInventarioService(repo)

	p := model.Producto{Nombre: "Café", Precio: decimal.RequireFromString("12.00"), Stock: 3}
	require.NoError(t, db.Create(&p).Error)

	_, err := svc.Reservar(context.Background(), nil, p.ID, 5)
	require.Error(t, err)
	var si *StockInsuficienteError
	require.ErrorAs(t, err, &si)
	assert.Equal(t, 3, si.Disponible)
	assert.Equal(t, 5, si.Solicitado)
	assert.Equal(t, "Café", si.Nombre)

	var leido model.Producto
	require.NoError(t, db.First(&leido, p.ID).Error)
	assert.Equal(t, 3, leido.Stock)
}

func TestReservarAgotaStockExacto(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductoRepository(db)
	svc := NewInventarioService(repo)

	p := model.Producto{Nombre: "Té", Precio: decimal.RequireFromString("3.00"), Stock: 5}
	require.NoError(t, db.Create(&p).Error)

	restante, err := svc.Reservar(context.Background(), nil, p.ID, 5)
	require.NoError(t, err)
	assert.Zero(t, restante)

	// Now empty: the next reservation must fail.
	_, err = svc.Reservar(context.Background(), nil, p.ID, 1)
	var si *StockInsuficienteError
	require.ErrorAs(t, err, &si)
	assert.Zero(t, si.Disponible)
}
