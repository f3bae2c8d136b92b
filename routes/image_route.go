package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	imageController "storefront-api/controllers/images"
	"storefront-api/middlewares"
	"storefront-api/storage"
)

func ImageRoutes(app *fiber.App, db *mongo.Database, store *storage.DiskStore) {
	ic := imageController.NewImageController(db, store)

	app.Post("/api/images/upload", middlewares.Protect, middlewares.AdminOnly, ic.UploadImage)
	app.Get("/api/images/:productId", ic.GetImagesByProduct)
}
