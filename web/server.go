package web

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/storemart/web/handlers"
	"github.com/storemart/web/middleware"
	"gorm.io/gorm"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer() *Server {
	app := fiber.New(fiber.Config{
		AppName:      "storemart",
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Custom middleware to attach per-request SQL logs
	app.Use(middleware.SQLDebugMiddleware())

	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// errorHandler maps database constraint violations and lookup failures onto
// HTTP status codes; everything else is a 500
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		code = fiber.StatusConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		code = fiber.StatusUnprocessableEntity
	default:
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
	}

	log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	app.Get("/health", handlers.Health)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	api := app.Group("/api/v1")

	// Platform administration, not tenant scoped
	tenants := api.Group("/tenants")
	tenants.Get("/", handlers.TenantList)
	tenants.Post("/", handlers.TenantCreate)
	tenants.Get("/:slug", handlers.TenantView)
	tenants.Patch("/:slug/status", handlers.TenantUpdateStatus)

	// Everything below resolves the tenant from the X-Tenant header
	store := api.Group("/store", middleware.ResolveTenant())

	catalog := store.Group("/catalog")
	catalog.Get("/categories", handlers.CategoryList)
	catalog.Post("/categories", handlers.CategoryCreate)
	catalog.Get("/brands", handlers.BrandList)
	catalog.Post("/brands", handlers.BrandCreate)
	catalog.Get("/products", handlers.ProductList)
	catalog.Post("/products", handlers.ProductCreate)
	catalog.Get("/products/:id", handlers.ProductView)
	catalog.Put("/products/:id", handlers.ProductUpdate)
	catalog.Delete("/products/:id", handlers.ProductDelete)
	catalog.Get("/products/:id/reviews", handlers.ReviewList)
	catalog.Post("/products/:id/reviews", handlers.ReviewCreate)

	carts := store.Group("/carts")
	carts.Post("/", handlers.CartOpen)
	carts.Get("/:id", handlers.CartView)
	carts.Post("/:id/items", handlers.CartAddItem)
	carts.Post("/:id/checkout", handlers.CartCheckout)

	orders := store.Group("/orders")
	orders.Get("/", handlers.OrderList)
	orders.Post("/", handlers.OrderCreate)
	orders.Get("/:number", handlers.OrderView)
	orders.Patch("/:number/status", handlers.OrderUpdateStatus)

	payments := store.Group("/payments")
	payments.Post("/", handlers.PaymentCreate)
	payments.Patch("/:number/status", handlers.PaymentUpdateStatus)
	payments.Post("/:number/refunds", handlers.RefundCreate)

	refunds := store.Group("/refunds")
	refunds.Patch("/:number/status", handlers.RefundUpdateStatus)

	reports := store.Group("/reports")
	reports.Get("/product-sales", handlers.ProductSalesReport)
	reports.Get("/category-sales", handlers.CategorySalesReport)
	reports.Get("/best-sellers", handlers.BestSellersReport)
	reports.Get("/trending", handlers.TrendingReport)

	settings := store.Group("/settings")
	settings.Get("/", handlers.SettingsResolve)
	settings.Put("/:key", handlers.SettingUpdate)
}
