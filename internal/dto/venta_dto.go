package dto

import "github.com/shopspring/decimal"

// The original wire format exposed the raw FK names (pId, pvId) alongside the
// friendly ones; both are still accepted on input.
var ventaAliases = map[string]string{
	"pId":   "personaId",
	"P_ID":  "personaId",
	"pvId":  "puntoDeVentaId",
	"PV_ID": "puntoDeVentaId",
}

var ventaDetalleAliases = map[string]string{
	"pId":                "productoId",
	"P_ID":               "productoId",
	"vdCantidad":         "cantidad",
	"VD_CANTIDAD":        "cantidad",
	"vdPrecioUnitario":   "precioUnitario",
	"VD_PRECIO_UNITARIO": "precioUnitario",
}

// DetalleVentaRequest is one requested sale line. PrecioUnitario is optional:
// when absent the product's current price is captured.
type DetalleVentaRequest struct {
	ProductoID     uint             `json:"productoId"     validate:"required"`
	Cantidad       int              `json:"cantidad"       validate:"required"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario" validate:"omitempty"`
}

func (r *DetalleVentaRequest) UnmarshalJSON(data []byte) error {
	type plain DetalleVentaRequest
	return unmarshalWithAliases(data, ventaDetalleAliases, (*plain)(r))
}

type CrearVentaRequest struct {
	PersonaID      uint                  `json:"personaId"      validate:"required"`
	PuntoDeVentaID uint                  `json:"puntoDeVentaId" validate:"required"`
	Detalles       []DetalleVentaRequest `json:"detalles"       validate:"dive"`
}

func (r *CrearVentaRequest) UnmarshalJSON(data []byte) error {
	type plain CrearVentaRequest
	return unmarshalWithAliases(data, ventaAliases, (*plain)(r))
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ID             uint            `json:"id"`
	ProductoID     uint            `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse is the fully hydrated sale view: denormalized names from the
// joined persona / punto de venta / ubicacion rows, and the derived total.
type VentaResponse struct {
	ID               uint                   `json:"id"`
	Fecha            string                 `json:"fecha"`
	PersonaID        uint                   `json:"personaId"`
	ClienteNombre    string                 `json:"clienteNombre"`
	PuntoDeVentaID   uint                   `json:"puntoDeVentaId"`
	PuntoVentaNombre string                 `json:"puntoVentaNombre"`
	UbicacionNombre  string                 `json:"ubicacionNombre"`
	Detalles         []DetalleVentaResponse `json:"detalles"`
	Total            decimal.Decimal        `json:"total"`
}

// VentaResumenPersona is the flattened per-sale summary of
// GET /api/ventas/persona/:personaId/detalles.
type VentaResumenPersona struct {
	VentaID       uint   `json:"ventaId"`
	Fecha         string `json:"fecha"`
	PersonaNombre string `json:"personaNombre"`
	PersonaEmail  string `json:"personaEmail"`
	PuntoVenta    string `json:"puntoVenta"`
	Ubicacion     string `json:"ubicacion"`
}
