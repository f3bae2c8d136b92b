package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	cartController "storefront-api/controllers/cart"
	"storefront-api/middlewares"
)

func CartRoutes(app *fiber.App, db *mongo.Database) {
	cc := cartController.NewCartController(db)

	app.Get("/api/cart", middlewares.Protect, cc.GetCart)
	app.Post("/api/cart/add", middlewares.Protect, cc.AddToCart)
	app.Put("/api/cart/update", middlewares.Protect, cc.UpdateCartItem)
	app.Delete("/api/cart/remove/:productId", middlewares.Protect, cc.RemoveFromCart)
	app.Delete("/api/cart/clear", middlewares.Protect, cc.ClearCart)
}
