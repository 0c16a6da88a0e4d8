package service

import (
	"context"
	"errors"

	"tienda/internal/dto"
	"tienda/internal/model"
	"tienda/internal/repository"

	"gorm.io/gorm"
)

type PersonaService interface {
	Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error)
	ListarTodas(ctx context.Context) ([]dto.PersonaResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.PersonaResponse, error)
	BuscarPorEmail(ctx context.Context, email string) (*dto.PersonaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type personaService struct {
	repo repository.PersonaRepository
}

func NewPersonaService(repo repository.PersonaRepository) PersonaService {
	return &personaService{repo: repo}
}

func (s *personaService) Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error) {
	// Application-level uniqueness check; the unique index on p_email is the
	// storage-layer backstop when two creates race.
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, &ConflictError{Campo: "email", Valor: req.Email}
	}

	p := model.Persona{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Telefono: req.Telefono,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return personaToResponse(&p), nil
}

func (s *personaService) ListarTodas(ctx context.Context) ([]dto.PersonaResponse, error) {
	personas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonaResponse, 0, len(personas))
	for i := range personas {
		out = append(out, *personaToResponse(&personas[i]))
	}
	return out, nil
}

func (s *personaService) BuscarPorID(ctx context.Context, id uint) (*dto.PersonaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Persona", ID: id}
		}
		return nil, err
	}
	return personaToResponse(p), nil
}

func (s *personaService) BuscarPorEmail(ctx context.Context, email string) (*dto.PersonaResponse, error) {
	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Persona", Clave: email}
		}
		return nil, err
	}
	return personaToResponse(p), nil
}

// Actualizar only touches the submitted fields; changing the email re-runs the
// uniqueness check against other rows.
func (s *personaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Persona", ID: id}
		}
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != "" {
		p.Nombre = *req.Nombre
	}
	if req.Apellido != nil && *req.Apellido != "" {
		p.Apellido = *req.Apellido
	}
	if req.Email != nil && *req.Email != "" && *req.Email != p.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, &ConflictError{Campo: "email", Valor: *req.Email}
		}
		p.Email = *req.Email
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return personaToResponse(p), nil
}

func (s *personaService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "Persona", ID: id}
		}
		return err
	}
	return nil
}

func personaToResponse(p *model.Persona) *dto.PersonaResponse {
	return &dto.PersonaResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Apellido:       p.Apellido,
		Email:          p.Email,
		Telefono:       p.Telefono,
		NombreCompleto: p.NombreCompleto(),
	}
}
