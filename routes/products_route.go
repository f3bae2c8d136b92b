package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	productController "storefront-api/controllers/products"
	"storefront-api/middlewares"
)

func ProductsRoutes(app *fiber.App, db *mongo.Database) {
	pc := productController.NewProductController(db)

	app.Get("/api/products/new", pc.GetNewProducts)
	app.Get("/api/products", pc.GetAllProducts)
	app.Get("/api/products/category/:categoryId", pc.GetProductsByCategory)
	app.Get("/api/products/:id", pc.GetProductById)

	app.Post("/api/products/:id/reviews", middlewares.Protect, pc.AddReview)

	// Catalog administration
	app.Post("/api/products", middlewares.Protect, middlewares.AdminOnly, pc.CreateProduct)
	app.Put("/api/products/:id", middlewares.Protect, middlewares.AdminOnly, pc.UpdateProduct)
	app.Delete("/api/products/:id", middlewares.Protect, middlewares.AdminOnly, pc.DeleteProduct)
}
