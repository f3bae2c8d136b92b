package productController

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/models"
	"storefront-api/responses"
)

var validate = validator.New()

type ProductController struct {
	products *mongo.Collection
}

func NewProductController(db *mongo.Database) *ProductController {
	return &ProductController{products: db.Collection("products")}
}

// categoryLookup embeds the category document under categoryInfo.
var categoryLookup = []bson.D{
	{{Key: "$lookup", Value: bson.M{
		"from":         "categories",
		"localField":   "category",
		"foreignField": "_id",
		"as":           "categoryInfo",
	}}},
	{{Key: "$unwind", Value: bson.M{
		"path":                       "$categoryInfo",
		"preserveNullAndEmptyArrays": true,
	}}},
}

// BuildProductFilter translates the category and search query params into a
// find filter. Search is a case-insensitive substring match over name and
// description.
func BuildProductFilter(category, search string) (bson.M, error) {
	filter := bson.M{}

	if category != "" {
		categoryID, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			return nil, responses.NewValidation("Invalid category ID format")
		}
		filter["category"] = categoryID
	}

	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return filter, nil
}

// BuildSortOption maps the sort query param to a sort document. Unknown keys
// leave the natural order untouched.
func BuildSortOption(sort string) bson.D {
	switch sort {
	case "price_low":
		return bson.D{{Key: "price", Value: 1}}
	case "price_high":
		return bson.D{{Key: "price", Value: -1}}
	case "newest":
		return bson.D{{Key: "createdAt", Value: -1}}
	case "rating":
		return bson.D{{Key: "rating", Value: -1}}
	default:
		return nil
	}
}

func (pc *ProductController) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter, err := BuildProductFilter(c.Query("category"), c.Query("search"))
	if err != nil {
		return responses.FromError(c, err)
	}

	page, limit := parsePagination(c.Query("page", "1"), c.Query("limit", "12"))
	skip := (page - 1) * limit

	totalProducts, err := pc.products.CountDocuments(ctx, filter)
	if err != nil {
		return responses.FromError(c, err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}
	if sortOption := BuildSortOption(c.Query("sort")); sortOption != nil {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sortOption}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	)
	pipeline = append(pipeline, categoryLookup...)

	cursor, err := pc.products.Aggregate(ctx, pipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return responses.FromError(c, err)
	}

	totalPages := (totalProducts + limit - 1) / limit

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"products":      products,
		"totalProducts": totalProducts,
		"totalPages":    totalPages,
		"currentPage":   page,
	})
}

func (pc *ProductController) GetNewProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isNew": true}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$limit", Value: 8}},
	}
	pipeline = append(pipeline, categoryLookup...)

	cursor, err := pc.products.Aggregate(ctx, pipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

func (pc *ProductController) GetProductById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": productObjectID}}},
	}
	pipeline = append(pipeline, categoryLookup...)

	cursor, err := pc.products.Aggregate(ctx, pipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return responses.FromError(c, err)
	}
	if len(products) == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}

	return c.Status(fiber.StatusOK).JSON(products[0])
}

func (pc *ProductController) GetProductsByCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	categoryID, err := primitive.ObjectIDFromHex(c.Params("categoryId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID format")
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"category": categoryID}}},
	}
	pipeline = append(pipeline, categoryLookup...)

	cursor, err := pc.products.Aggregate(ctx, pipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      string   `json:"category" validate:"required"`
	Stock         int      `json:"stock" validate:"min=0"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	IsFeatured    bool     `json:"isFeatured"`
}

func (pc *ProductController) CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Name, description, price, and category are required")
	}

	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID format")
	}

	now := time.Now()
	product := models.Product{
		Id:            primitive.NewObjectID(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      categoryID,
		Stock:         req.Stock,
		Sizes:         orEmpty(req.Sizes),
		Colors:        orEmpty(req.Colors),
		IsFeatured:    req.IsFeatured,
		Reviews:       []models.Review{},
		Images:        []models.ImageSet{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := pc.products.InsertOne(ctx, product); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

type UpdateProductRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      string   `json:"category"`
	Stock         *int     `json:"stock"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	IsFeatured    *bool    `json:"isFeatured"`
}

func (pc *ProductController) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Omitted fields stay untouched.
	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Price != nil && *req.Price > 0 {
		set["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		set["originalPrice"] = *req.OriginalPrice
	}
	if req.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID format")
		}
		set["category"] = categoryID
	}
	if req.Stock != nil && *req.Stock >= 0 {
		set["stock"] = *req.Stock
	}
	if req.Sizes != nil {
		set["sizes"] = req.Sizes
	}
	if req.Colors != nil {
		set["colors"] = req.Colors
	}
	if req.IsFeatured != nil {
		set["isFeatured"] = *req.IsFeatured
	}

	var product models.Product
	err = pc.products.FindOneAndUpdate(ctx,
		bson.M{"_id": productObjectID},
		bson.M{"$set": set},
		findOneAndUpdateAfter(),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (pc *ProductController) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	res, err := pc.products.DeleteOne(ctx, bson.M{"_id": productObjectID})
	if err != nil {
		return responses.FromError(c, err)
	}
	if res.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Product deleted successfully"})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func parsePagination(pageStr, limitStr string) (page, limit int64) {
	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = 12
	}
	return page, limit
}
