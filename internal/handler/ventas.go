package handler

import (
	"net/http"

	"tienda/internal/apierror"
	"tienda/internal/dto"
	"tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler {
	return &VentasHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar una venta
// @Description  Crea la venta con sus detalles y descuenta stock de forma atomica.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearVentaRequest true "Venta con detalles"
// @Success      201 {object} dto.VentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/ventas [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearVenta(c.Request.Context(), req)
	if err != nil {
		// Referencias inexistentes dentro del cuerpo de la venta se reportan
		// como 400, igual que el resto de los errores de la operacion.
		writeServiceError(c, err, false)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentasHandler) ListarTodas(c *gin.Context) {
	resp, err := h.svc.ListarTodas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) BuscarPorID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) VentasPorPersona(c *gin.Context) {
	personaID, ok := pathID(c, "personaId")
	if !ok {
		return
	}
	resp, err := h.svc.VentasPorPersona(c.Request.Context(), personaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasPorPersonaConDetalles godoc
// @Summary      Resumen de ventas por persona
// @Tags         ventas
// @Produce      json
// @Param        personaId path int true "ID de la persona"
// @Success      200 {array} dto.VentaResumenPersona
// @Router       /api/ventas/persona/{personaId}/detalles [get]
func (h *VentasHandler) VentasPorPersonaConDetalles(c *gin.Context) {
	personaID, ok := pathID(c, "personaId")
	if !ok {
		return
	}
	resp, err := h.svc.VentasPorPersonaConDetalles(c.Request.Context(), personaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
