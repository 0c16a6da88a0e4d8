package repository

import (
	"context"

	"tienda/internal/model"

	"gorm.io/gorm"
)

type PuntoVentaRepository interface {
	Create(ctx context.Context, pv *model.PuntoDeVenta) error
	FindByID(ctx context.Context, id uint) (*model.PuntoDeVenta, error)
	List(ctx context.Context) ([]model.PuntoDeVenta, error)
	FindByUbicacion(ctx context.Context, ubicacionID uint) ([]model.PuntoDeVenta, error)
	Update(ctx context.Context, pv *model.PuntoDeVenta) error
	Delete(ctx context.Context, id uint) error
}

type puntoVentaRepo struct{ db *gorm.DB }

func NewPuntoVentaRepository(db *gorm.DB) PuntoVentaRepository { return &puntoVentaRepo{db: db} }

func (r *puntoVentaRepo) Create(ctx context.Context, pv *model.PuntoDeVenta) error {
	return r.db.WithContext(ctx).Create(pv).Error
}

func (r *puntoVentaRepo) FindByID(ctx context.Context, id uint) (*model.PuntoDeVenta, error) {
	var pv model.PuntoDeVenta
	err := r.db.WithContext(ctx).Preload("Ubicacion").First(&pv, id).Error
	return &pv, err
}

func (r *puntoVentaRepo) List(ctx context.Context) ([]model.PuntoDeVenta, error) {
	var puntos []model.PuntoDeVenta
	err := r.db.WithContext(ctx).Preload("Ubicacion").Order("pv_id ASC").Find(&puntos).Error
	return puntos, err
}

func (r *puntoVentaRepo) FindByUbicacion(ctx context.Context, ubicacionID uint) ([]model.PuntoDeVenta, error) {
	var puntos []model.PuntoDeVenta
	err := r.db.WithContext(ctx).Preload("Ubicacion").
		Where("u_id = ?", ubicacionID).
		Order("pv_id ASC").
		Find(&puntos).Error
	return puntos, err
}

func (r *puntoVentaRepo) Update(ctx context.Context, pv *model.PuntoDeVenta) error {
	return r.db.WithContext(ctx).Save(pv).Error
}

func (r *puntoVentaRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.PuntoDeVenta{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
