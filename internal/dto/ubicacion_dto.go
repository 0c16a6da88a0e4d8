package dto

var ubicacionAliases = map[string]string{
	"uNombre":  "nombre",
	"U_NOMBRE": "nombre",
}

type CrearUbicacionRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

func (r *CrearUbicacionRequest) UnmarshalJSON(data []byte) error {
	type plain CrearUbicacionRequest
	return unmarshalWithAliases(data, ubicacionAliases, (*plain)(r))
}

type UbicacionResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}
