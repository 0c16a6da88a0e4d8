package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is an immutable multi-line order. Detalles is an owned collection loaded
// by query; detail rows point back via VentaID only (no cyclic object graph).
// The total is always derived from the lines and never stored.
type Venta struct {
	ID             uint      `gorm:"column:v_id;primaryKey"`
	Fecha          time.Time `gorm:"column:v_fecha;not null"`
	PersonaID      uint      `gorm:"column:p_id;not null;index"`
	PuntoDeVentaID uint      `gorm:"column:pv_id;not null;index"`

	Persona      *Persona       `gorm:"foreignKey:PersonaID"`
	PuntoDeVenta *PuntoDeVenta  `gorm:"foreignKey:PuntoDeVentaID"`
	Detalles     []VentaDetalle `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "venta" }

// Total recomputes Σ subtotal over the loaded lines.
func (v *Venta) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range v.Detalles {
		total = total.Add(v.Detalles[i].Subtotal())
	}
	return total
}

// VentaDetalle is one line of a sale. PrecioUnitario is captured at sale time and
// is independent of the product's current price.
type VentaDetalle struct {
	ID             uint            `gorm:"column:vd_id;primaryKey"`
	VentaID        uint            `gorm:"column:v_id;not null;index"`
	ProductoID     uint            `gorm:"column:p_id;not null;index"`
	Cantidad       int             `gorm:"column:vd_cantidad;not null"`
	PrecioUnitario decimal.Decimal `gorm:"column:vd_precio_unitario;type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaDetalle) TableName() string { return "venta_detalle" }

func (d *VentaDetalle) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
