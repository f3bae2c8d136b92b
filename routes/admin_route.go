package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/cache"
	adminController "storefront-api/controllers/admin"
	"storefront-api/middlewares"
)

func AdminRoutes(app *fiber.App, db *mongo.Database, statsCache *cache.RedisCache) {
	ac := adminController.NewAdminController(db, statsCache)

	app.Get("/api/admin/dashboard/stats", middlewares.Protect, middlewares.AdminOnly, ac.DashboardStats)
	app.Get("/api/admin/sales/data", middlewares.Protect, middlewares.AdminOnly, ac.SalesData)
	app.Get("/api/admin/revenue/stats", middlewares.Protect, middlewares.AdminOnly, ac.RevenueStats)
	app.Get("/api/admin/products/low-stock", middlewares.Protect, middlewares.AdminOnly, ac.LowStockProducts)
}
