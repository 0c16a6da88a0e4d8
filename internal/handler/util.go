package handler

import (
	"net/http"

	"tienda/internal/apierror"
	"tienda/internal/repository"

	"github.com/gin-gonic/gin"
)

// UtilHandler exposes the database maintenance endpoints.
type UtilHandler struct{ secuencias repository.SecuenciaRepository }

func NewUtilHandler(secuencias repository.SecuenciaRepository) *UtilHandler {
	return &UtilHandler{secuencias: secuencias}
}

// ResetSequences godoc
// @Summary      Reiniciar secuencias seriales
// @Description  Realinea cada secuencia al MAX(id) de su tabla.
// @Tags         util
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/util/reset-sequences [post]
func (h *UtilHandler) ResetSequences(c *gin.Context) {
	values, err := h.secuencias.Reset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al reiniciar secuencias"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"mensaje":   "Secuencias reiniciadas exitosamente",
		"sequences": values,
	})
}

func (h *UtilHandler) CheckSequences(c *gin.Context) {
	values, err := h.secuencias.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar secuencias"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"sequences": values,
	})
}
