package repository

import (
	"context"

	"tienda/internal/model"

	"gorm.io/gorm"
)

// PersonaRepository defines the data access contract for personas.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing.
type PersonaRepository interface {
	Create(ctx context.Context, p *model.Persona) error
	FindByID(ctx context.Context, id uint) (*model.Persona, error)
	FindByEmail(ctx context.Context, email string) (*model.Persona, error)
	List(ctx context.Context) ([]model.Persona, error)
	Update(ctx context.Context, p *model.Persona) error
	Delete(ctx context.Context, id uint) error
}

type personaRepo struct{ db *gorm.DB }

func NewPersonaRepository(db *gorm.DB) PersonaRepository { return &personaRepo{db: db} }

func (r *personaRepo) Create(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personaRepo) FindByID(ctx context.Context, id uint) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *personaRepo) FindByEmail(ctx context.Context, email string) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).Where("p_email = ?", email).First(&p).Error
	return &p, err
}

func (r *personaRepo) List(ctx context.Context) ([]model.Persona, error) {
	var personas []model.Persona
	err := r.db.WithContext(ctx).Order("p_id ASC").Find(&personas).Error
	return personas, err
}

func (r *personaRepo) Update(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *personaRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Persona{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
