package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"storefront-api/cache"
	"storefront-api/configs"
	"storefront-api/routes"
	"storefront-api/storage"
	"storefront-api/utils"
)

func main() {
	configs.LoadEnv()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	client := configs.ConnectDB()
	db := client.Database(configs.EnvMongoDB())

	utils.SeedCategories(db.Collection("categories"))

	statsCache := cache.NewRedisCache(configs.EnvRedisAddr(), "storefront")

	store, err := storage.NewDiskStore(configs.EnvUploadDir(), configs.EnvPublicBaseURL())
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	app.Static("/uploads", configs.EnvUploadDir())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "Server is running"})
	})

	routes.UserRoutes(app, db)
	routes.ProductsRoutes(app, db)
	routes.CategoryRoutes(app, db)
	routes.CartRoutes(app, db)
	routes.OrderRoutes(app, db)
	routes.AdminRoutes(app, db, statsCache)
	routes.ImageRoutes(app, db, store)

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
