package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/configs"
	orderController "storefront-api/controllers/orders"
	"storefront-api/middlewares"
)

func OrderRoutes(app *fiber.App, db *mongo.Database) {
	oc := orderController.NewOrderController(db, configs.EnvOrderStatusStrict(), configs.EnvPaymentWebhookSecret())

	app.Post("/api/orders", middlewares.Protect, oc.CreateOrder)
	app.Get("/api/orders/my-orders", middlewares.Protect, oc.GetMyOrders)
	app.Get("/api/orders", middlewares.Protect, middlewares.AdminOnly, oc.GetAllOrders)
	app.Get("/api/orders/:id", middlewares.Protect, oc.GetOrderById)
	app.Put("/api/orders/:id/status", middlewares.Protect, middlewares.AdminOnly, oc.UpdateOrderStatus)
	app.Post("/api/orders/:id/cancel", middlewares.Protect, oc.CancelOrder)

	// Signed by the payment provider, no bearer auth.
	app.Post("/api/orders/webhook/payment", oc.PaymentWebhook)
}
