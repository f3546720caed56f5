package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/analytics"
	"github.com/dulcehorno/panaderia-api/internal/application/auth"
	"github.com/dulcehorno/panaderia-api/internal/application/inventory"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	MaterialUC       *usecase.MaterialUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	CriticalStock    *inventory.CriticalStockUseCase
	DashboardUC      *analytics.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Inventario (admin y panadero escriben; lectura para cualquier autenticado)
	invGroup := protected.Group("/inventory")
	canWrite := RequireRole(entity.RoleAdmin, entity.RolePanadero)

	materials := invGroup.Group("/materias-primas")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.CriticalStock)
	materials.Get("/", materialHandler.List)
	materials.Get("/criticas", materialHandler.ListCritical)
	materials.Post("/", canWrite, materialHandler.Create)
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	materials.Put("/reabastecer/:id", canWrite, inventoryHandler.Restock)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", canWrite, materialHandler.Update)
	materials.Delete("/:id", RequireRole(entity.RoleAdmin), materialHandler.Deactivate)

	movements := invGroup.Group("/movimientos")
	movements.Post("/", canWrite, inventoryHandler.RegisterMovement)
	movements.Get("/", inventoryHandler.History)

	// Dashboard y reportes (lectura para cualquier autenticado)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/reportes/mermas", dashboardHandler.MermaReport)
	dashboard.Get("/reportes/insumos", dashboardHandler.UsageReport)
	dashboard.Get("/reportes/ventas", dashboardHandler.SalesReport)
	dashboard.Get("/reportes/costos", dashboardHandler.CostsReport)
	dashboard.Get("/reportes/margen", dashboardHandler.MarginReport)
}
