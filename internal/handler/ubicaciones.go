package handler

import (
	"net/http"

	"tienda/internal/apierror"
	"tienda/internal/dto"
	"tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type UbicacionesHandler struct{ svc service.UbicacionService }

func NewUbicacionesHandler(svc service.UbicacionService) *UbicacionesHandler {
	return &UbicacionesHandler{svc: svc}
}

func (h *UbicacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearUbicacionRequest
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

func (h *UbicacionesHandler) ListarTodas(c *gin.Context) {
	resp, err := h.svc.ListarTodas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ubicaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UbicacionesHandler) BuscarPorID(c *gin.Context) {
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

func (h *UbicacionesHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearUbicacionRequest
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

func (h *UbicacionesHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Ubicación eliminada exitosamente"})
}
