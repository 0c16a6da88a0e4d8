package handler

import (
	"net/http"

	"tienda/internal/apierror"
	"tienda/internal/dto"
	"tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type PuntosVentaHandler struct{ svc service.PuntoVentaService }

func NewPuntosVentaHandler(svc service.PuntoVentaService) *PuntosVentaHandler {
	return &PuntosVentaHandler{svc: svc}
}

func (h *PuntosVentaHandler) Crear(c *gin.Context) {
	var req dto.CrearPuntoVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, false)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PuntosVentaHandler) ListarTodos(c *gin.Context) {
	resp, err := h.svc.ListarTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar puntos de venta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PuntosVentaHandler) BuscarPorID(c *gin.Context) {
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

func (h *PuntosVentaHandler) BuscarPorUbicacion(c *gin.Context) {
	uID, ok := pathID(c, "uId")
	if !ok {
		return
	}
	resp, err := h.svc.BuscarPorUbicacion(c.Request.Context(), uID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar puntos de venta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PuntosVentaHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearPuntoVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PuntosVentaHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Punto de venta eliminado exitosamente"})
}
