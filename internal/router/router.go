package router

import (
	"time"

	"tienda/internal/config"
	"tienda/internal/handler"
	"tienda/internal/middleware"
	"tienda/internal/repository"
	"tienda/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	personaRepo := repository.NewPersonaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ubicacionRepo := repository.NewUbicacionRepository(db)
	puntoVentaRepo := repository.NewPuntoVentaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	secuenciaRepo := repository.NewSecuenciaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	personaSvc := service.NewPersonaService(personaRepo)
	productoSvc := service.NewProductoService(productoRepo)
	ubicacionSvc := service.NewUbicacionService(ubicacionRepo)
	puntoVentaSvc := service.NewPuntoVentaService(puntoVentaRepo, ubicacionRepo)
	inventarioSvc := service.NewInventarioService(productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, personaRepo, puntoVentaRepo, productoRepo, inventarioSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	personasH := handler.NewPersonasHandler(personaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	ubicacionesH := handler.NewUbicacionesHandler(ubicacionSvc)
	puntosVentaH := handler.NewPuntosVentaHandler(puntoVentaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	utilH := handler.NewUtilHandler(secuenciaRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		personas := api.Group("/personas")
		{
			personas.POST("", personasH.Crear)
			personas.GET("", personasH.ListarTodas)
			personas.GET("/email/:email", personasH.BuscarPorEmail)
			personas.GET("/:id", personasH.BuscarPorID)
			personas.PUT("/:id", personasH.Actualizar)
			personas.DELETE("/:id", personasH.Eliminar)
		}

		productos := api.Group("/productos")
		{
			// Report routes registered before /:id so Gin does not shadow them
			productos.GET("/stock-bajo/:cantidad", productosH.StockBajo)
			productos.GET("/cantidad-vendida", productosH.CantidadVendida)
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.ListarTodos)
			productos.GET("/:id", productosH.BuscarPorID)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		ubicaciones := api.Group("/ubicaciones")
		{
			ubicaciones.POST("", ubicacionesH.Crear)
			ubicaciones.GET("", ubicacionesH.ListarTodas)
			ubicaciones.GET("/:id", ubicacionesH.BuscarPorID)
			ubicaciones.PUT("/:id", ubicacionesH.Actualizar)
			ubicaciones.DELETE("/:id", ubicacionesH.Eliminar)
		}

		puntosVenta := api.Group("/puntos-venta")
		{
			puntosVenta.GET("/ubicacion/:uId", puntosVentaH.BuscarPorUbicacion)
			puntosVenta.POST("", puntosVentaH.Crear)
			puntosVenta.GET("", puntosVentaH.ListarTodos)
			puntosVenta.GET("/:id", puntosVentaH.BuscarPorID)
			puntosVenta.PUT("/:id", puntosVentaH.Actualizar)
			puntosVenta.DELETE("/:id", puntosVentaH.Eliminar)
		}

		ventas := api.Group("/ventas")
		{
			ventas.POST("", ventasH.Crear)
			ventas.GET("", ventasH.ListarTodas)
			ventas.GET("/persona/:personaId", ventasH.VentasPorPersona)
			ventas.GET("/persona/:personaId/detalles", ventasH.VentasPorPersonaConDetalles)
			ventas.GET("/:id", ventasH.BuscarPorID)
		}

		util := api.Group("/util")
		{
			util.POST("/reset-sequences", utilH.ResetSequences)
			util.GET("/check-sequences", utilH.CheckSequences)
		}
	}

	// Swagger UI — only enabled outside production. Run `swag init` to generate
	// the docs package; until then the UI serves without a doc.json.
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
