package model

import "github.com/shopspring/decimal"

// Producto holds catalog data plus the live stock counter. Stock is mutated only
// by the sale workflow (conditional decrement) or an administrative update.
type Producto struct {
	ID          uint            `gorm:"column:p_id;primaryKey"`
	Nombre      string          `gorm:"column:p_nombre;size:200;not null"`
	Descripcion *string         `gorm:"column:p_descripcion;type:text"`
	Precio      decimal.Decimal `gorm:"column:p_precio;type:decimal(10,2);not null"`
	Stock       int             `gorm:"column:p_stock;not null"`
}

func (Producto) TableName() string { return "producto" }
