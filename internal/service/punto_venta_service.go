package service

import (
	"context"
	"errors"

	"tienda/internal/dto"
	"tienda/internal/model"
	"tienda/internal/repository"

	"gorm.io/gorm"
)

type PuntoVentaService interface {
	Crear(ctx context.Context, req dto.CrearPuntoVentaRequest) (*dto.PuntoVentaResponse, error)
	ListarTodos(ctx context.Context) ([]dto.PuntoVentaResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.PuntoVentaResponse, error)
	BuscarPorUbicacion(ctx context.Context, ubicacionID uint) ([]dto.PuntoVentaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearPuntoVentaRequest) (*dto.PuntoVentaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type puntoVentaService struct {
	repo          repository.PuntoVentaRepository
	ubicacionRepo repository.UbicacionRepository
}

func NewPuntoVentaService(repo repository.PuntoVentaRepository, ubicacionRepo repository.UbicacionRepository) PuntoVentaService {
	return &puntoVentaService{repo: repo, ubicacionRepo: ubicacionRepo}
}

func (s *puntoVentaService) Crear(ctx context.Context, req dto.CrearPuntoVentaRequest) (*dto.PuntoVentaResponse, error) {
	ubicacion, err := s.ubicacionRepo.FindByID(ctx, req.UbicacionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Ubicación", ID: req.UbicacionID}
		}
		return nil, err
	}

	pv := model.PuntoDeVenta{Nombre: req.Nombre, UbicacionID: req.UbicacionID}
	if err := s.repo.Create(ctx, &pv); err != nil {
		return nil, err
	}
	pv.Ubicacion = ubicacion
	return puntoVentaToResponse(&pv), nil
}

func (s *puntoVentaService) ListarTodos(ctx context.Context) ([]dto.PuntoVentaResponse, error) {
	puntos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PuntoVentaResponse, 0, len(puntos))
	for i := range puntos {
		out = append(out, *puntoVentaToResponse(&puntos[i]))
	}
	return out, nil
}

func (s *puntoVentaService) BuscarPorID(ctx context.Context, id uint) (*dto.PuntoVentaResponse, error) {
	pv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Punto de venta", ID: id}
		}
		return nil, err
	}
	return puntoVentaToResponse(pv), nil
}

func (s *puntoVentaService) BuscarPorUbicacion(ctx context.Context, ubicacionID uint) ([]dto.PuntoVentaResponse, error) {
	puntos, err := s.repo.FindByUbicacion(ctx, ubicacionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PuntoVentaResponse, 0, len(puntos))
	for i := range puntos {
		out = append(out, *puntoVentaToResponse(&puntos[i]))
	}
	return out, nil
}

func (s *puntoVentaService) Actualizar(ctx context.Context, id uint, req dto.CrearPuntoVentaRequest) (*dto.PuntoVentaResponse, error) {
	pv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Punto de venta", ID: id}
		}
		return nil, err
	}

	if req.UbicacionID != 0 && req.UbicacionID != pv.UbicacionID {
		ubicacion, err := s.ubicacionRepo.FindByID(ctx, req.UbicacionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "Ubicación", ID: req.UbicacionID}
			}
			return nil, err
		}
		pv.UbicacionID = req.UbicacionID
		pv.Ubicacion = ubicacion
	}
	pv.Nombre = req.Nombre

	if err := s.repo.Update(ctx, pv); err != nil {
		return nil, err
	}
	return puntoVentaToResponse(pv), nil
}

func (s *puntoVentaService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "Punto de venta", ID: id}
		}
		return err
	}
	return nil
}

func puntoVentaToResponse(pv *model.PuntoDeVenta) *dto.PuntoVentaResponse {
	resp := &dto.PuntoVentaResponse{
		ID:          pv.ID,
		Nombre:      pv.Nombre,
		UbicacionID: pv.UbicacionID,
	}
	if pv.Ubicacion != nil {
		resp.UbicacionNombre = pv.Ubicacion.Nombre
	}
	return resp
}
