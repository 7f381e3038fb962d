package router

import (
	"time"

	"github.com/ser180/4R/internal/config"
	"github.com/ser180/4R/internal/handler"
	"github.com/ser180/4R/internal/infra"
	"github.com/ser180/4R/internal/middleware"
	"github.com/ser180/4R/internal/repository"
	"github.com/ser180/4R/internal/service"
	"github.com/ser180/4R/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis/Storage
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, storage *infra.Storage) *gin.Engine {
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
	userRepo := repository.NewUserRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewPurchaseOrderRepository(db)
	movementRepo := repository.NewWarehouseMovementRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	supplierSvc := service.NewSupplierService(supplierRepo)
	orderSvc := service.NewPurchaseOrderService(orderRepo, supplierRepo, dispatcher)
	warehouseSvc := service.NewWarehouseService(movementRepo, orderRepo)
	documentSvc := service.NewDocumentService(documentRepo, orderRepo, movementRepo, supplierRepo, storage)
	searchSvc := service.NewSearchService(orderRepo, movementRepo, documentRepo)
	reportSvc := service.NewReportService(reportRepo, cfg.ExportStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	ordersH := handler.NewPurchaseOrdersHandler(orderSvc)
	warehouseH := handler.NewWarehouseHandler(warehouseSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)
	searchH := handler.NewSearchHandler(searchSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	dashboardH := handler.NewDashboardHandler(reportRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, storage))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: operador, administrador — declared per-endpoint
		v1.GET("/profile", usersH.Profile)
		v1.PUT("/profile", usersH.UpdateProfile)

		users := v1.Group("/users", middleware.RequireRole("administrador"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.DELETE("/:id", usersH.Deactivate)
		}

		// Suppliers — every operator reads, only administrators write
		v1.GET("/suppliers", suppliersH.List)
		v1.GET("/suppliers/active", suppliersH.ListActive)
		v1.GET("/suppliers/:id", suppliersH.Get)
		suppliers := v1.Group("/suppliers", middleware.RequireRole("administrador"))
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		orders := v1.Group("/purchase-orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PUT("/:id", middleware.RequireRole("administrador"), ordersH.Update)
		}

		movements := v1.Group("/warehouse-movements")
		{
			movements.POST("", warehouseH.Create)
			movements.GET("", warehouseH.List)
			movements.GET("/:id", warehouseH.Get)
			movements.PUT("/:id", warehouseH.Update)
		}

		documents := v1.Group("/documents")
		{
			documents.POST("", documentsH.Upload)
			documents.GET("", documentsH.List)
			documents.GET("/:id/download", documentsH.Download)
			documents.DELETE("/:id", middleware.RequireRole("administrador"), documentsH.Delete)
		}

		v1.GET("/search", searchH.Search)

		reports := v1.Group("/reports")
		{
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/export/excel", reportsH.ExportExcel)
			reports.GET("/export/pdf", reportsH.ExportPDF)
		}

		v1.GET("/dashboard", dashboardH.Counters)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
