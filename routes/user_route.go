package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	userController "storefront-api/controllers/users"
	"storefront-api/middlewares"
)

func UserRoutes(app *fiber.App, db *mongo.Database) {
	uc := userController.NewUserController(db)

	app.Post("/api/users/register", uc.Register)
	app.Post("/api/users/login", uc.Login)
	app.Get("/api/users/profile", middlewares.Protect, uc.GetProfile)
	app.Put("/api/users/profile", middlewares.Protect, uc.UpdateProfile)
	app.Get("/api/users", middlewares.Protect, middlewares.AdminOnly, uc.GetAllUsers)
	app.Delete("/api/users/:id", middlewares.Protect, middlewares.AdminOnly, uc.DeleteUser)
}
