package productController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/models"
	"storefront-api/responses"
)

type AddReviewRequest struct {
	Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment"`
}

// AddReview appends a review and recomputes the product's derived rating.
func (pc *ProductController) AddReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	userId, _ := c.Locals("userId").(string)
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var product models.Product
	if err := pc.products.FindOne(ctx, bson.M{"_id": productObjectID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return responses.FromError(c, err)
	}

	review := models.Review{
		User:      userObjectID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	reviews := append(product.Reviews, review)

	err = pc.products.FindOneAndUpdate(ctx,
		bson.M{"_id": productObjectID},
		bson.M{"$set": bson.M{
			"reviews":   reviews,
			"rating":    models.AverageRating(reviews),
			"updatedAt": time.Now(),
		}},
		findOneAndUpdateAfter(),
	).Decode(&product)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func findOneAndUpdateAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
