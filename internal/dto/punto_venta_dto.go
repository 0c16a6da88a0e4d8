package dto

var puntoVentaAliases = map[string]string{
	"pvNombre":  "nombre",
	"PV_NOMBRE": "nombre",
	"uId":       "ubicacionId",
	"U_ID":      "ubicacionId",
}

type CrearPuntoVentaRequest struct {
	Nombre      string `json:"nombre"      validate:"required,min=1,max=100"`
	UbicacionID uint   `json:"ubicacionId" validate:"required"`
}

func (r *CrearPuntoVentaRequest) UnmarshalJSON(data []byte) error {
	type plain CrearPuntoVentaRequest
	return unmarshalWithAliases(data, puntoVentaAliases, (*plain)(r))
}

type PuntoVentaResponse struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	UbicacionID     uint   `json:"ubicacionId"`
	UbicacionNombre string `json:"ubicacionNombre,omitempty"`
}
