package repository

import (
	"context"

	"tienda/internal/model"

	"gorm.io/gorm"
)

type UbicacionRepository interface {
	Create(ctx context.Context, u *model.Ubicacion) error
	FindByID(ctx context.Context, id uint) (*model.Ubicacion, error)
	List(ctx context.Context) ([]model.Ubicacion, error)
	Update(ctx context.Context, u *model.Ubicacion) error
	Delete(ctx context.Context, id uint) error
}

type ubicacionRepo struct{ db *gorm.DB }

func NewUbicacionRepository(db *gorm.DB) UbicacionRepository { return &ubicacionRepo{db: db} }

func (r *ubicacionRepo) Create(ctx context.Context, u *model.Ubicacion) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *ubicacionRepo) FindByID(ctx context.Context, id uint) (*model.Ubicacion, error) {
	var u model.Ubicacion
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *ubicacionRepo) List(ctx context.Context) ([]model.Ubicacion, error) {
	var ubicaciones []model.Ubicacion
	err := r.db.WithContext(ctx).Order("u_id ASC").Find(&ubicaciones).Error
	return ubicaciones, err
}

func (r *ubicacionRepo) Update(ctx context.Context, u *model.Ubicacion) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *ubicacionRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Ubicacion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
