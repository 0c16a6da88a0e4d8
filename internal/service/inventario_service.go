package service

import (
	"context"
	"errors"

	"tienda/internal/repository"

	"gorm.io/gorm"
)

// InventarioService is the per-product stock check-and-decrement primitive used
// exclusively by the sale workflow.
type InventarioService interface {
	// Reservar decrements cantidad units of the product inside the caller's
	// transaction and returns the remaining stock. It fails with NotFoundError,
	// ErrCantidadInvalida or StockInsuficienteError without mutating anything.
	// It has no rollback logic of its own: the caller owns atomicity across lines.
	Reservar(ctx context.Context, tx *gorm.DB, productoID uint, cantidad int) (int, error)
}

type inventarioService struct {
	repo repository.ProductoRepository
}

func NewInventarioService(repo repository.ProductoRepository) InventarioService {
	return &inventarioService{repo: repo}
}

func (s *inventarioService) Reservar(ctx context.Context, tx *gorm.DB, productoID uint, cantidad int) (int, error) {
	if cantidad <= 0 {
		return 0, ErrCantidadInvalida
	}

	p, err := s.repo.FindByIDTx(ctx, tx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &NotFoundError{Entidad: "Producto", ID: productoID}
		}
		return 0, err
	}
	if p.Stock < cantidad {
		return 0, &StockInsuficienteError{
			ProductoID: p.ID,
			Nombre:     p.Nombre,
			Disponible: p.Stock,
			Solicitado: cantidad,
		}
	}

	// Conditional decrement: the WHERE p_stock >= cantidad guard makes the
	// check-then-write atomic per row, so two concurrent reservations can never
	// both drain the same units. Zero rows updated after the pre-check means a
	// concurrent caller got there first: re-read and report what is left.
	rows, err := s.repo.DescontarStockTx(ctx, tx, productoID, cantidad)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		actual, err := s.repo.FindByIDTx(ctx, tx, productoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, &NotFoundError{Entidad: "Producto", ID: productoID}
			}
			return 0, err
		}
		return 0, &StockInsuficienteError{
			ProductoID: actual.ID,
			Nombre:     actual.Nombre,
			Disponible: actual.Stock,
			Solicitado: cantidad,
		}
	}
	return p.Stock - cantidad, nil
}
