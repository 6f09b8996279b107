package router

import (
	"time"

	"comidapp/internal/authz"
	"comidapp/internal/config"
	"comidapp/internal/handler"
	"comidapp/internal/infra"
	"comidapp/internal/middleware"
	"comidapp/internal/repository"
	"comidapp/internal/service"
	"comidapp/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, imagenCB *infra.CircuitBreaker) *gin.Engine {
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
	r.Use(middleware.Prometheus())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	imagenClient := infra.NewImagenClient(cfg.ImagenServiceURL, imagenCB)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	rolRepo := repository.NewRolRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	comboRepo := repository.NewComboRepository(db)
	ofertaRepo := repository.NewOfertaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	calificacionRepo := repository.NewCalificacionRepository(db)
	repartidorRepo := repository.NewRepartidorRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, rolRepo, clienteRepo, dispatcher, cfg)
	rolSvc := service.NewRolService(rolRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, imagenClient)
	comboSvc := service.NewComboService(comboRepo, productoRepo)
	ofertaSvc := service.NewOfertaService(ofertaRepo, productoRepo, categoriaRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, productoRepo, ofertaRepo, repartidorRepo)
	ventaSvc := service.NewVentaService(ventaRepo, pedidoRepo, dispatcher, cfg.PDFStoragePath)
	calificacionSvc := service.NewCalificacionService(calificacionRepo, pedidoRepo)
	repartidorSvc := service.NewRepartidorService(repartidorRepo, usuarioRepo, pedidoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	rolesH := handler.NewRolesHandler(rolSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	combosH := handler.NewCombosHandler(comboSvc)
	ofertasH := handler.NewOfertasHandler(ofertaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	calificacionesH := handler.NewCalificacionesHandler(calificacionSvc)
	repartidoresH := handler.NewRepartidoresHandler(repartidorSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, imagenCB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/registro", authH.Registro)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes — JWT first, then the capability table per endpoint
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		roles := api.Group("/rol")
		{
			roles.POST("", middleware.Authorize(authz.RecRol, authz.AccCrear), rolesH.Crear)
			roles.GET("", middleware.Authorize(authz.RecRol, authz.AccLeer), rolesH.Listar)
			roles.GET("/:id", middleware.Authorize(authz.RecRol, authz.AccLeer), rolesH.Obtener)
			roles.PUT("/:id", middleware.Authorize(authz.RecRol, authz.AccActualizar), rolesH.Actualizar)
		}

		usuarios := api.Group("/usuario")
		{
			usuarios.GET("", middleware.Authorize(authz.RecUsuario, authz.AccLeer), authH.ListarUsuarios)
			usuarios.GET("/:id", middleware.Authorize(authz.RecUsuario, authz.AccLeer), authH.ObtenerUsuario)
			usuarios.PUT("/:id", middleware.Authorize(authz.RecUsuario, authz.AccActualizar), authH.ActualizarUsuario)
			usuarios.DELETE("/:id", middleware.Authorize(authz.RecUsuario, authz.AccEliminar), authH.DesactivarUsuario)
		}

		clientes := api.Group("/cliente")
		{
			clientes.GET("", middleware.Authorize(authz.RecCliente, authz.AccLeer), clientesH.Listar)
			clientes.GET("/:id", middleware.Authorize(authz.RecCliente, authz.AccLeer), clientesH.Obtener)
			clientes.PUT("/:id", middleware.Authorize(authz.RecCliente, authz.AccActualizar), clientesH.Actualizar)
			clientes.DELETE("/:id", middleware.Authorize(authz.RecCliente, authz.AccEliminar), clientesH.Desactivar)
		}

		categorias := api.Group("/categorias")
		{
			categorias.POST("", middleware.Authorize(authz.RecCategoria, authz.AccCrear), categoriasH.Crear)
			categorias.GET("", middleware.Authorize(authz.RecCategoria, authz.AccLeer), categoriasH.Listar)
			categorias.GET("/:id", middleware.Authorize(authz.RecCategoria, authz.AccLeer), categoriasH.Obtener)
			categorias.PUT("/:id", middleware.Authorize(authz.RecCategoria, authz.AccActualizar), categoriasH.Actualizar)
			categorias.DELETE("/:id", middleware.Authorize(authz.RecCategoria, authz.AccEliminar), categoriasH.Eliminar)
		}

		productos := api.Group("/productos")
		{
			productos.POST("", middleware.Authorize(authz.RecProducto, authz.AccCrear), productosH.Crear)
			productos.GET("", middleware.Authorize(authz.RecProducto, authz.AccLeer), productosH.Listar)
			productos.GET("/:id", middleware.Authorize(authz.RecProducto, authz.AccLeer), productosH.Obtener)
			productos.PUT("/:id", middleware.Authorize(authz.RecProducto, authz.AccActualizar), productosH.Actualizar)
			productos.DELETE("/:id", middleware.Authorize(authz.RecProducto, authz.AccEliminar), productosH.Eliminar)
			productos.POST("/:id/imagen", middleware.Authorize(authz.RecProducto, authz.AccActualizar), productosH.GenerarImagen)
		}

		combos := api.Group("/combos")
		{
			combos.POST("", middleware.Authorize(authz.RecCombo, authz.AccCrear), combosH.Crear)
			combos.GET("", middleware.Authorize(authz.RecCombo, authz.AccLeer), combosH.Listar)
			combos.GET("/:id", middleware.Authorize(authz.RecCombo, authz.AccLeer), combosH.Obtener)
			combos.PUT("/:id", middleware.Authorize(authz.RecCombo, authz.AccActualizar), combosH.Actualizar)
			combos.DELETE("/:id", middleware.Authorize(authz.RecCombo, authz.AccEliminar), combosH.Eliminar)
		}

		ofertas := api.Group("/ofertas")
		{
			ofertas.POST("", middleware.Authorize(authz.RecOferta, authz.AccCrear), ofertasH.Crear)
			ofertas.GET("", middleware.Authorize(authz.RecOferta, authz.AccLeer), ofertasH.Listar)
			ofertas.GET("/vigentes", middleware.Authorize(authz.RecOferta, authz.AccLeer), ofertasH.ListarVigentes)
			ofertas.GET("/:id", middleware.Authorize(authz.RecOferta, authz.AccLeer), ofertasH.Obtener)
			ofertas.PUT("/:id", middleware.Authorize(authz.RecOferta, authz.AccActualizar), ofertasH.Actualizar)
			ofertas.PATCH("/:id/estado", middleware.Authorize(authz.RecOferta, authz.AccActualizar), ofertasH.CambiarEstado)
			ofertas.DELETE("/:id", middleware.Authorize(authz.RecOferta, authz.AccEliminar), ofertasH.Eliminar)
		}

		pedidos := api.Group("/pedido")
		{
			pedidos.POST("", middleware.Authorize(authz.RecPedido, authz.AccCrear), pedidosH.Crear)
			pedidos.GET("", middleware.Authorize(authz.RecPedido, authz.AccLeer), pedidosH.Listar)
			pedidos.GET("/:id", middleware.Authorize(authz.RecPedido, authz.AccLeer), pedidosH.Obtener)
			pedidos.PATCH("/:id/estado", middleware.Authorize(authz.RecPedido, authz.AccActualizar), pedidosH.CambiarEstado)
			pedidos.PATCH("/:id/asignar-repartidor", middleware.Authorize(authz.RecPedido, authz.AccActualizar), pedidosH.AsignarRepartidor)
			pedidos.GET("/:id/calificacion", middleware.Authorize(authz.RecCalificacion, authz.AccLeer), calificacionesH.ObtenerPorPedido)
		}

		ventas := api.Group("/ventas")
		{
			ventas.POST("", middleware.Authorize(authz.RecVenta, authz.AccCrear), ventasH.Crear)
			ventas.GET("", middleware.Authorize(authz.RecVenta, authz.AccLeer), ventasH.Listar)
			ventas.GET("/:id", middleware.Authorize(authz.RecVenta, authz.AccLeer), ventasH.Obtener)
			ventas.POST("/:id/generar-factura", middleware.Authorize(authz.RecVenta, authz.AccActualizar), ventasH.GenerarFactura)
			ventas.GET("/:id/factura", middleware.Authorize(authz.RecVenta, authz.AccLeer), ventasH.DescargarFactura)
			ventas.PATCH("/:id/estado-pago", middleware.Authorize(authz.RecVenta, authz.AccActualizar), ventasH.CambiarEstadoPago)
		}

		calificaciones := api.Group("/calificaciones")
		{
			calificaciones.POST("", middleware.Authorize(authz.RecCalificacion, authz.AccCrear), calificacionesH.Crear)
			calificaciones.GET("", middleware.Authorize(authz.RecCalificacion, authz.AccLeer), calificacionesH.Listar)
			calificaciones.GET("/:id", middleware.Authorize(authz.RecCalificacion, authz.AccLeer), calificacionesH.Obtener)
		}

		repartidores := api.Group("/repartidores")
		{
			repartidores.POST("", middleware.Authorize(authz.RecRepartidor, authz.AccCrear), repartidoresH.Crear)
			repartidores.GET("", middleware.Authorize(authz.RecRepartidor, authz.AccLeer), repartidoresH.Listar)
			repartidores.GET("/disponibles", middleware.Authorize(authz.RecRepartidor, authz.AccLeer), repartidoresH.ListarDisponibles)
			repartidores.GET("/:id", middleware.Authorize(authz.RecRepartidor, authz.AccLeer), repartidoresH.Obtener)
			repartidores.PATCH("/:id/estado", middleware.Authorize(authz.RecRepartidor, authz.AccActualizar), repartidoresH.CambiarEstado)
			repartidores.POST("/:id/entregas", middleware.Authorize(authz.RecRepartidor, authz.AccActualizar), repartidoresH.RegistrarEntrega)
			repartidores.DELETE("/:id", middleware.Authorize(authz.RecRepartidor, authz.AccEliminar), repartidoresH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
