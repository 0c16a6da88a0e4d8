package service

import (
	"errors"
	"fmt"
)

// Request-level domain errors. Handlers map these to 400/404; anything else that
// bubbles up from the storage layer is treated as a 500 by the error middleware.
var (
	ErrVentaSinDetalles = errors.New("La venta debe tener al menos un detalle")
	ErrCantidadInvalida = errors.New("La cantidad debe ser mayor que cero")
)

// NotFoundError identifies a referenced entity that does not exist. Lookups by
// a natural key (email) set Clave instead of ID.
type NotFoundError struct {
	Entidad string
	ID      uint
	Clave   string
}

func (e *NotFoundError) Error() string {
	if e.Clave != "" {
		return fmt.Sprintf("%s no encontrado: %s", e.Entidad, e.Clave)
	}
	return fmt.Sprintf("%s no encontrado con ID: %d", e.Entidad, e.ID)
}

// ConflictError signals a uniqueness violation (duplicate email).
type ConflictError struct {
	Campo string
	Valor string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("El %s ya está registrado: %s", e.Campo, e.Valor)
}

// StockInsuficienteError carries the available vs. requested quantities so the
// client can correct the order.
type StockInsuficienteError struct {
	ProductoID uint
	Nombre     string
	Disponible int
	Solicitado int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para %s. Disponible: %d, Solicitado: %d",
		e.Nombre, e.Disponible, e.Solicitado)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsRequestError reports whether err is one of the domain errors handlers
// answer with a 4xx. Anything else is a storage failure and must not reach
// the client verbatim.
func IsRequestError(err error) bool {
	if errors.Is(err, ErrVentaSinDetalles) || errors.Is(err, ErrCantidadInvalida) {
		return true
	}
	var nf *NotFoundError
	var conflict *ConflictError
	var stock *StockInsuficienteError
	return errors.As(err, &nf) || errors.As(err, &conflict) || errors.As(err, &stock)
}
