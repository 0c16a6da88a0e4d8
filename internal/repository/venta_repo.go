package repository

import (
	"context"

	"tienda/internal/model"

	"gorm.io/gorm"
)

// ventaPreloads hydrates the full sale view: persona, punto de venta with its
// ubicacion, and detail lines with their product.
func ventaPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Persona").
		Preload("PuntoDeVenta.Ubicacion").
		Preload("Detalles.Producto")
}

type VentaRepository interface {
	// CreateTx persists the venta together with its detalles inside the caller's
	// transaction (association cascade). Sales are only ever created this way.
	CreateTx(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	FindByPersona(ctx context.Context, personaID uint) ([]model.Venta, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := ventaPreloads(r.db.WithContext(ctx)).First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := ventaPreloads(r.db.WithContext(ctx)).
		Order("v_fecha DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) FindByPersona(ctx context.Context, personaID uint) ([]model.Venta, error) {
	var ventas []model.Venta
	err := ventaPreloads(r.db.WithContext(ctx)).
		Where("p_id = ?", personaID).
		Order("v_fecha DESC").
		Find(&ventas).Error
	return ventas, err
}
