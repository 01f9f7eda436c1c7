package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-api/internal/handler"
	"go-warehouse-api/internal/middleware"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.WarehouseStock{}, &model.EditEvent{}, &model.Warehouseman{})

	// 3. Seed a default warehouseman so a fresh install is usable
	seedDefaultWarehouseman(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	warehousemanRepo := repository.NewWarehousemanRepo(db)

	invService := service.NewInventoryService(productRepo, wsHub)
	dashService := service.NewDashboardService(productRepo)
	authService := service.NewAuthService(warehousemanRepo)

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Inventory API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(warehousemanRepo))

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetStatistics)

	// Products
	protected.Get("/products", invHandler.GetProducts)
	protected.Get("/products/search", invHandler.SearchProducts)
	protected.Get("/products/barcode/:barcode", invHandler.GetProductByBarcode)
	protected.Get("/products/:id", invHandler.GetProduct)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:id/stock", invHandler.AdjustStock)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaultWarehouseman creates a first account when the table is empty.
// The key comes from SEED_SECRET_KEY so it never has to live in the code.
func seedDefaultWarehouseman(db *gorm.DB) {
	warehousemanRepo := repository.NewWarehousemanRepo(db)

	count, err := warehousemanRepo.Count()
	if err != nil {
		log.Printf("Warning: Failed to count warehousemen: %v", err)
		return
	}
	if count > 0 {
		return
	}

	secretKey := os.Getenv("SEED_SECRET_KEY")
	if secretKey == "" {
		log.Println("Warning: No warehousemen in DB and SEED_SECRET_KEY not set, skipping seed")
		return
	}

	worker := &model.Warehouseman{
		Name:        "Default Warehouseman",
		City:        os.Getenv("SEED_CITY"),
		WarehouseID: 1,
		IsActive:    true,
	}
	if err := worker.SetSecretKey(secretKey); err != nil {
		log.Printf("Warning: Failed to hash seed secret key: %v", err)
		return
	}

	if err := warehousemanRepo.Create(worker); err != nil {
		log.Printf("Warning: Failed to create default warehouseman: %v", err)
	} else {
		log.Println("Default warehouseman created (warehouse 1)")
	}
}
