package dto

// Legacy clients send the storage-derived names (pNombre / P_NOMBRE); the API
// canonical names are the friendly ones.
var personaAliases = map[string]string{
	"pNombre":    "nombre",
	"P_NOMBRE":   "nombre",
	"pApellido":  "apellido",
	"P_APELLIDO": "apellido",
	"pEmail":     "email",
	"P_EMAIL":    "email",
	"pTelefono":  "telefono",
	"P_TELEFONO": "telefono",
}

type CrearPersonaRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=1,max=100"`
	Apellido string  `json:"apellido" validate:"required,min=1,max=100"`
	Email    string  `json:"email"    validate:"required,email,max=150"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
}

func (r *CrearPersonaRequest) UnmarshalJSON(data []byte) error {
	type plain CrearPersonaRequest
	return unmarshalWithAliases(data, personaAliases, (*plain)(r))
}

// ActualizarPersonaRequest updates only the fields present (nil = keep current).
type ActualizarPersonaRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=1,max=100"`
	Apellido *string `json:"apellido" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email,max=150"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
}

func (r *ActualizarPersonaRequest) UnmarshalJSON(data []byte) error {
	type plain ActualizarPersonaRequest
	return unmarshalWithAliases(data, personaAliases, (*plain)(r))
}

type PersonaResponse struct {
	ID             uint    `json:"id"`
	Nombre         string  `json:"nombre"`
	Apellido       string  `json:"apellido"`
	Email          string  `json:"email"`
	Telefono       *string `json:"telefono"`
	NombreCompleto string  `json:"nombreCompleto"`
}
