package service

import (
	"context"
	"errors"

	"tienda/internal/dto"
	"tienda/internal/model"
	"tienda/internal/repository"

	"gorm.io/gorm"
)

type UbicacionService interface {
	Crear(ctx context.Context, req dto.CrearUbicacionRequest) (*dto.UbicacionResponse, error)
	ListarTodas(ctx context.Context) ([]dto.UbicacionResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.UbicacionResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearUbicacionRequest) (*dto.UbicacionResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type ubicacionService struct {
	repo repository.UbicacionRepository
}

func NewUbicacionService(repo repository.UbicacionRepository) UbicacionService {
	return &ubicacionService{repo: repo}
}

func (s *ubicacionService) Crear(ctx context.Context, req dto.CrearUbicacionRequest) (*dto.UbicacionResponse, error) {
	u := model.Ubicacion{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &dto.UbicacionResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (s *ubicacionService) ListarTodas(ctx context.Context) ([]dto.UbicacionResponse, error) {
	ubicaciones, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UbicacionResponse, 0, len(ubicaciones))
	for _, u := range ubicaciones {
		out = append(out, dto.UbicacionResponse{ID: u.ID, Nombre: u.Nombre})
	}
	return out, nil
}

func (s *ubicacionService) BuscarPorID(ctx context.Context, id uint) (*dto.UbicacionResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Ubicación", ID: id}
		}
		return nil, err
	}
	return &dto.UbicacionResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (s *ubicacionService) Actualizar(ctx context.Context, id uint, req dto.CrearUbicacionRequest) (*dto.UbicacionResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Ubicación", ID: id}
		}
		return nil, err
	}
	u.Nombre = req.Nombre
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return &dto.UbicacionResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (s *ubicacionService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "Ubicación", ID: id}
		}
		return err
	}
	return nil
}
