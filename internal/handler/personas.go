package handler

import (
	"net/http"

	"tienda/internal/apierror"
	"tienda/internal/dto"
	"tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type PersonasHandler struct{ svc service.PersonaService }

func NewPersonasHandler(svc service.PersonaService) *PersonasHandler {
	return &PersonasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearPersonaRequest true "Datos de la persona"
// @Success      201 {object} dto.PersonaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/personas [post]
func (h *PersonasHandler) Crear(c *gin.Context) {
	var req dto.CrearPersonaRequest
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

func (h *PersonasHandler) ListarTodas(c *gin.Context) {
	resp, err := h.svc.ListarTodas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar personas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonasHandler) BuscarPorID(c *gin.Context) {
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

func (h *PersonasHandler) BuscarPorEmail(c *gin.Context) {
	resp, err := h.svc.BuscarPorEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeServiceError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonasHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPersonaRequest
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

func (h *PersonasHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Persona eliminada exitosamente"})
}
