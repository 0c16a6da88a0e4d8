package repository

import (
	"context"

	"tienda/internal/dto"
	"tienda/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products, including
// the tx-scoped stock operations used by the sale workflow.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uint) error

	// FindByStockBajo returns products whose stock is strictly below the
	// threshold, lowest stock first.
	FindByStockBajo(ctx context.Context, threshold int) ([]model.Producto, error)

	// CantidadVendidaPorProducto aggregates units sold per product across all
	// sales, descending by quantity. Products never sold appear with 0.
	CantidadVendidaPorProducto(ctx context.Context) ([]dto.CantidadVendidaItem, error)

	// FindByIDTx reads within the caller's transaction (nil tx = base handle).
	FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*model.Producto, error)

	// DescontarStockTx applies a conditional decrement: it only succeeds when the
	// row still has at least cantidad units, making check-then-write atomic per
	// product row. Returns the number of rows updated (0 = insufficient or gone).
	DescontarStockTx(ctx context.Context, tx *gorm.DB, id uint, cantidad int) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("p_id ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) FindByStockBajo(ctx context.Context, threshold int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("p_stock < ?", threshold).
		Order("p_stock ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) CantidadVendidaPorProducto(ctx context.Context) ([]dto.CantidadVendidaItem, error) {
	var items []dto.CantidadVendidaItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.p_id                           AS producto_id,
		       p.p_nombre                       AS nombre_producto,
		       COALESCE(SUM(vd.vd_cantidad), 0) AS cantidad_vendida
		FROM producto p
		LEFT JOIN venta_detalle vd ON vd.p_id = p.p_id
		GROUP BY p.p_id, p.p_nombre
		ORDER BY cantidad_vendida DESC`).
		Scan(&items).Error
	return items, err
}

func (r *productoRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*model.Producto, error) {
	if tx == nil {
		tx = r.db
	}
	var p model.Producto
	err := tx.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) DescontarStockTx(ctx context.Context, tx *gorm.DB, id uint, cantidad int) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).Model(&model.Producto{}).
		Where("p_id = ? AND p_stock >= ?", id, cantidad).
		Update("p_stock", gorm.Expr("p_stock - ?", cantidad))
	return res.RowsAffected, res.Error
}
