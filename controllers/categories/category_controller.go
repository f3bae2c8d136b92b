package categoryController

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/models"
	"storefront-api/responses"
)

var validate = validator.New()

type CategoryController struct {
	categories *mongo.Collection
}

func NewCategoryController(db *mongo.Database) *CategoryController {
	return &CategoryController{categories: db.Collection("categories")}
}

func (cc *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := cc.categories.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return responses.FromError(c, err)
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}

func (cc *CategoryController) GetCategoryById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	categoryObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID format")
	}

	var category models.Category
	if err := cc.categories.FindOne(ctx, bson.M{"_id": categoryObjectID}).Decode(&category); err != nil {
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&category); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Category name is required")
	}

	category.Id = primitive.NewObjectID()
	if _, err := cc.categories.InsertOne(ctx, category); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (cc *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	categoryObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID format")
	}

	var req models.Category
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}

	var category models.Category
	err = cc.categories.FindOneAndUpdate(ctx,
		bson.M{"_id": categoryObjectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

func (cc *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	categoryObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID format")
	}

	res, err := cc.categories.DeleteOne(ctx, bson.M{"_id": categoryObjectID})
	if err != nil {
		return responses.FromError(c, err)
	}
	if res.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Category deleted successfully"})
}
