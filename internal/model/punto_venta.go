package model

// PuntoDeVenta belongs to exactly one Ubicacion.
type PuntoDeVenta struct {
	ID          uint   `gorm:"column:pv_id;primaryKey"`
	Nombre      string `gorm:"column:pv_nombre;size:100;not null"`
	UbicacionID uint   `gorm:"column:u_id;not null;index"`

	Ubicacion *Ubicacion `gorm:"foreignKey:UbicacionID"`
}

func (PuntoDeVenta) TableName() string { return "punto_de_venta" }
