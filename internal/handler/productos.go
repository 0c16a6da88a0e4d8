package handler

import (
	"net/http"
	"strconv"

	"tienda/internal/apierror"
	"tienda/internal/dto"
	"tienda/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
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

func (h *ProductosHandler) ListarTodos(c *gin.Context) {
	resp, err := h.svc.ListarTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) BuscarPorID(c *gin.Context) {
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

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
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

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Producto eliminado exitosamente"})
}

// StockBajo godoc
// @Summary      Productos con stock por debajo del umbral
// @Tags         productos
// @Produce      json
// @Param        cantidad path int true "Umbral de stock"
// @Success      200 {array} dto.ProductoResponse
// @Router       /api/productos/stock-bajo/{cantidad} [get]
func (h *ProductosHandler) StockBajo(c *gin.Context) {
	threshold, err := strconv.Atoi(c.Param("cantidad"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Cantidad invalida"))
		return
	}
	resp, err := h.svc.StockBajo(c.Request.Context(), threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar stock"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CantidadVendida godoc
// @Summary      Unidades vendidas por producto, descendente
// @Tags         productos
// @Produce      json
// @Success      200 {array} dto.CantidadVendidaItem
// @Router       /api/productos/cantidad-vendida [get]
func (h *ProductosHandler) CantidadVendida(c *gin.Context) {
	resp, err := h.svc.CantidadVendida(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar ventas por producto"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
