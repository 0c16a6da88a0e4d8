package dto

import "github.com/shopspring/decimal"

var productoAliases = map[string]string{
	"pNombre":       "nombre",
	"P_NOMBRE":      "nombre",
	"pDescripcion":  "descripcion",
	"P_DESCRIPCION": "descripcion",
	"pPrecio":       "precio",
	"P_PRECIO":      "precio",
	"pStock":        "stock",
	"P_STOCK":       "stock",
}

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=1,max=200"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"      validate:"min=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
}

func (r *CrearProductoRequest) UnmarshalJSON(data []byte) error {
	type plain CrearProductoRequest
	return unmarshalWithAliases(data, productoAliases, (*plain)(r))
}

// ActualizarProductoRequest sets all mutable fields; stock here is the
// administrative absolute set, not a decrement.
type ActualizarProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=1,max=200"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"      validate:"min=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
}

func (r *ActualizarProductoRequest) UnmarshalJSON(data []byte) error {
	type plain ActualizarProductoRequest
	return unmarshalWithAliases(data, productoAliases, (*plain)(r))
}

type ProductoResponse struct {
	ID          uint            `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
}

// CantidadVendidaItem is one row of the aggregate sold-quantity view,
// ordered by cantidadVendida descending.
type CantidadVendidaItem struct {
	ProductoID      uint   `json:"productoId"`
	NombreProducto  string `json:"nombreProducto"`
	CantidadVendida int64  `json:"cantidadVendida"`
}
