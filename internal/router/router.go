package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"puntoventa/internal/config"
	"puntoventa/internal/handler"
	"puntoventa/internal/middleware"
	"puntoventa/internal/repository"
	"puntoventa/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, tz *time.Location) *gin.Engine {
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
	cajaRepo := repository.NewCajaRepository(db)
	statsRepo := repository.NewStatsRepository(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	cajaSvc := service.NewCajaService(cajaRepo, tz)
	ventaSvc := service.NewVentaService(cajaSvc, statsRepo, tz)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cajaH := handler.NewCajaHandler(cajaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		caja := v1.Group("/caja")
		{
			caja.POST("/abrir", cajaH.Abrir)
			caja.POST("/movimiento", cajaH.RegistrarMovimiento)
			caja.POST("/cierre", cajaH.Cerrar)
			caja.GET("/actual", cajaH.SesionActual)
			caja.GET("/actual/arqueo", cajaH.ArqueoPrevia)
			caja.GET("/historial", cajaH.Historial)
		}

		// Ingestion seam: checkout reports each completed order here
		v1.POST("/ventas", ventasH.VentaCompletada)

		v1.GET("/stats/hoy", ventasH.StatsHoy)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
