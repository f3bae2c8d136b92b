package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	categoryController "storefront-api/controllers/categories"
	"storefront-api/middlewares"
)

func CategoryRoutes(app *fiber.App, db *mongo.Database) {
	cc := categoryController.NewCategoryController(db)

	app.Get("/api/categories", cc.GetAllCategories)
	app.Get("/api/categories/:id", cc.GetCategoryById)
	app.Post("/api/categories", middlewares.Protect, middlewares.AdminOnly, cc.CreateCategory)
	app.Put("/api/categories/:id", middlewares.Protect, middlewares.AdminOnly, cc.UpdateCategory)
	app.Delete("/api/categories/:id", middlewares.Protect, middlewares.AdminOnly, cc.DeleteCategory)
}
