package model

// Persona is a customer identity. Email is unique; the DB-level index is the
// backstop for the application-level check in PersonaService.
type Persona struct {
	ID       uint    `gorm:"column:p_id;primaryKey"`
	Nombre   string  `gorm:"column:p_nombre;size:100;not null"`
	Apellido string  `gorm:"column:p_apellido;size:100;not null"`
	Email    string  `gorm:"column:p_email;size:150;not null;uniqueIndex"`
	Telefono *string `gorm:"column:p_telefono;size:20"`
}

func (Persona) TableName() string { return "persona" }

// NombreCompleto is the display name used in sale views.
func (p *Persona) NombreCompleto() string { return p.Nombre + " " + p.Apellido }
