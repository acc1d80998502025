package router

import (
	"time"

	"github.com/nmacchitella/fashion-inventory/internal/config"
	"github.com/nmacchitella/fashion-inventory/internal/handler"
	"github.com/nmacchitella/fashion-inventory/internal/middleware"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"
	"github.com/nmacchitella/fashion-inventory/internal/service"
	"github.com/nmacchitella/fashion-inventory/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	materialRepo := repository.NewMaterialRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	materialSvc := service.NewMaterialService(materialRepo)
	productSvc := service.NewProductService(productRepo, materialRepo)
	orderSvc := service.NewOrderService(orderRepo, materialRepo, contactRepo, dispatcher)
	contactSvc := service.NewContactService(contactRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo)
	plannerSvc := service.NewPlannerService(productRepo)
	dashboardSvc := service.NewDashboardService(materialRepo, productRepo, contactRepo, orderRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	materialsH := handler.NewMaterialsHandler(materialSvc)
	productsH := handler.NewProductsHandler(productSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	contactsH := handler.NewContactsHandler(contactSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	plannerH := handler.NewPlannerHandler(plannerSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// Role shorthands
	admin := string(model.RoleAdmin)
	user := string(model.RoleUser)
	production := string(model.RoleProductionManager)
	inventoryMgr := string(model.RoleInventoryManager)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

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
		anyRole := middleware.RequireRole(admin, user, production, inventoryMgr)

		v1.GET("/dashboard", anyRole, dashboardH.Summary)

		// Requirements planner — any authenticated role can run it
		v1.POST("/tools/calculate-materials", anyRole, plannerH.CalculateMaterials)

		// Materials — reads for everyone, writes for admin and production
		v1.GET("/materials", anyRole, materialsH.List)
		v1.GET("/materials/:id", anyRole, materialsH.GetByID)
		materials := v1.Group("/materials", middleware.RequireRole(admin, production))
		{
			materials.POST("", materialsH.Create)
			materials.PUT("/:id", materialsH.Update)
			materials.DELETE("/:id", materialsH.Delete)
		}

		// Products and their bill of materials
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.GetByID)
		products := v1.Group("/products", middleware.RequireRole(admin, production))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.POST("/:id/materials", productsH.AddBOMLine)
			products.PUT("/:id/materials/:lineId", productsH.UpdateBOMLine)
			products.DELETE("/:id/materials/:lineId", productsH.RemoveBOMLine)
		}

		// Material orders
		v1.GET("/orders", anyRole, ordersH.List)
		v1.GET("/orders/:id", anyRole, ordersH.GetByID)
		orders := v1.Group("/orders", middleware.RequireRole(admin, inventoryMgr))
		{
			orders.POST("", ordersH.Create)
			orders.PUT("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
		}

		// Contacts
		v1.GET("/contacts", anyRole, contactsH.List)
		v1.GET("/contacts/:id", anyRole, contactsH.GetByID)
		contacts := v1.Group("/contacts", middleware.RequireRole(admin))
		{
			contacts.POST("", contactsH.Create)
			contacts.PUT("/:id", contactsH.Update)
			contacts.DELETE("/:id", contactsH.Delete)
		}

		// Inventory — adjustments restricted to admin and inventory manager
		v1.GET("/inventory", anyRole, inventoryH.List)
		v1.GET("/inventory/:id", anyRole, inventoryH.GetByID)
		v1.GET("/inventory/:id/movements", anyRole, inventoryH.ListMovements)
		v1.PATCH("/inventory/:id/adjust", middleware.RequireRole(admin, inventoryMgr), inventoryH.Adjust)

		// Users — admin only
		users := v1.Group("/users", middleware.RequireRole(admin))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
