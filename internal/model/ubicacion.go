package model

// Ubicacion is a leaf entity: a geographic site that owns points of sale.
type Ubicacion struct {
	ID     uint   `gorm:"column:u_id;primaryKey"`
	Nombre string `gorm:"column:u_nombre;size:100;not null"`
}

func (Ubicacion) TableName() string { return "ubicacion" }
