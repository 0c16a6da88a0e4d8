package service

import (
	"context"
	"errors"
	"time"

	"tienda/internal/dto"
	"tienda/internal/model"
	"tienda/internal/repository"

	"gorm.io/gorm"
)

const (
	fechaLayout        = "2006-01-02T15:04:05"
	fechaResumenLayout = "2006-01-02 15:04:05"
)

// VentaService is the sale workflow: it validates a multi-line order, reserves
// stock per line and persists the sale with its lines as one atomic unit.
type VentaService interface {
	CrearVenta(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	ListarTodas(ctx context.Context) ([]dto.VentaResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.VentaResponse, error)
	VentasPorPersona(ctx context.Context, personaID uint) ([]dto.VentaResponse, error)
	VentasPorPersonaConDetalles(ctx context.Context, personaID uint) ([]dto.VentaResumenPersona, error)
}

type ventaService struct {
	repo           repository.VentaRepository
	personaRepo    repository.PersonaRepository
	puntoVentaRepo repository.PuntoVentaRepository
	productoRepo   repository.ProductoRepository
	inventario     InventarioService
}

func NewVentaService(
	repo repository.VentaRepository,
	personaRepo repository.PersonaRepository,
	puntoVentaRepo repository.PuntoVentaRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
) VentaService {
	return &ventaService{
		repo:           repo,
		personaRepo:    personaRepo,
		puntoVentaRepo: puntoVentaRepo,
		productoRepo:   productoRepo,
		inventario:     inventario,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// CrearVenta validates and commits a sale. Validation order: empty order, then
// invalid quantities, then referenced entities, then per-line stock in submitted
// order. Stock decrements and the venta+detalle inserts happen inside ONE
// transaction: a failure on line k rolls back the decrements of lines 1..k-1,
// so partial stock updates are never observable.
func (s *ventaService) CrearVenta(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, ErrVentaSinDetalles
	}
	for _, d := range req.Detalles {
		if d.Cantidad <= 0 {
			return nil, ErrCantidadInvalida
		}
	}

	if _, err := s.personaRepo.FindByID(ctx, req.PersonaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Persona", ID: req.PersonaID}
		}
		return nil, err
	}
	if _, err := s.puntoVentaRepo.FindByID(ctx, req.PuntoDeVentaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Punto de venta", ID: req.PuntoDeVentaID}
		}
		return nil, err
	}

	venta := model.Venta{
		Fecha:          time.Now(),
		PersonaID:      req.PersonaID,
		PuntoDeVentaID: req.PuntoDeVentaID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, d := range req.Detalles {
			producto, err := s.productoRepo.FindByIDTx(ctx, tx, d.ProductoID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Entidad: "Producto", ID: d.ProductoID}
				}
				return err
			}

			// Captured unit price: the submitted one, or the product's current
			// price when the client omitted it.
			precio := producto.Precio
			if d.PrecioUnitario != nil {
				precio = *d.PrecioUnitario
			}

			if _, err := s.inventario.Reservar(ctx, tx, d.ProductoID, d.Cantidad); err != nil {
				return err
			}

			venta.Detalles = append(venta.Detalles, model.VentaDetalle{
				ProductoID:     d.ProductoID,
				Cantidad:       d.Cantidad,
				PrecioUnitario: precio,
			})
		}

		// Venta row + detalle rows in one cascading insert; commits or aborts
		// together with the stock decrements above.
		return s.repo.CreateTx(ctx, tx, &venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	completa, err := s.repo.FindByID(ctx, venta.ID)
	if err != nil {
		return nil, err
	}
	return ventaToResponse(completa), nil
}

func (s *ventaService) ListarTodas(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ventasToResponses(ventas), nil
}

func (s *ventaService) BuscarPorID(ctx context.Context, id uint) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Venta", ID: id}
		}
		return nil, err
	}
	return ventaToResponse(v), nil
}

func (s *ventaService) VentasPorPersona(ctx context.Context, personaID uint) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.FindByPersona(ctx, personaID)
	if err != nil {
		return nil, err
	}
	return ventasToResponses(ventas), nil
}

// VentasPorPersonaConDetalles returns the flattened per-sale summary used by
// the reporting view: date, customer name/email, point of sale and location.
func (s *ventaService) VentasPorPersonaConDetalles(ctx context.Context, personaID uint) ([]dto.VentaResumenPersona, error) {
	ventas, err := s.repo.FindByPersona(ctx, personaID)
	if err != nil {
		return nil, err
	}
	resumen := make([]dto.VentaResumenPersona, 0, len(ventas))
	for i := range ventas {
		v := &ventas[i]
		item := dto.VentaResumenPersona{
			VentaID: v.ID,
			Fecha:   v.Fecha.Format(fechaResumenLayout),
		}
		if v.Persona != nil {
			item.PersonaNombre = v.Persona.NombreCompleto()
			item.PersonaEmail = v.Persona.Email
		}
		if v.PuntoDeVenta != nil {
			item.PuntoVenta = v.PuntoDeVenta.Nombre
			if v.PuntoDeVenta.Ubicacion != nil {
				item.Ubicacion = v.PuntoDeVenta.Ubicacion.Nombre
			}
		}
		resumen = append(resumen, item)
	}
	return resumen, nil
}

func ventasToResponses(ventas []model.Venta) []dto.VentaResponse {
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for i := range v.Detalles {
		d := &v.Detalles[i]
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			ProductoNombre: nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal(),
		})
	}

	resp := &dto.VentaResponse{
		ID:             v.ID,
		Fecha:          v.Fecha.Format(fechaLayout),
		PersonaID:      v.PersonaID,
		PuntoDeVentaID: v.PuntoDeVentaID,
		Detalles:       detalles,
		Total:          v.Total(),
	}
	if v.Persona != nil {
		resp.ClienteNombre = v.Persona.NombreCompleto()
	}
	if v.PuntoDeVenta != nil {
		resp.PuntoVentaNombre = v.PuntoDeVenta.Nombre
		if v.PuntoDeVenta.Ubicacion != nil {
			resp.UbicacionNombre = v.PuntoDeVenta.Ubicacion.Nombre
		}
	}
	return resp
}
