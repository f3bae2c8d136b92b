package cartController

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

// CartController manages each user's single mutable cart. Carts are created
// lazily on the first add and emptied rather than deleted.
type CartController struct {
	carts    *mongo.Collection
	products *mongo.Collection
}

func NewCartController(db *mongo.Database) *CartController {
	return &CartController{
		carts:    db.Collection("carts"),
		products: db.Collection("products"),
	}
}

func (cc *CartController) GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := callerObjectID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var cart models.Cart
	err = cc.carts.FindOne(ctx, bson.M{"user": userObjectID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		// No cart yet reads as an empty one.
		return c.Status(fiber.StatusOK).JSON(models.Cart{User: userObjectID, Items: []models.CartItem{}})
	}
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(cart)
}

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (cc *CartController) AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := callerObjectID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	// The product must exist before it can be carted.
	var product models.Product
	if err := cc.products.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return responses.FromError(c, err)
	}

	var cart models.Cart
	err = cc.carts.FindOne(ctx, bson.M{"user": userObjectID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		cart = models.Cart{
			Id:    primitive.NewObjectID(),
			User:  userObjectID,
			Items: []models.CartItem{},
		}
	} else if err != nil {
		return responses.FromError(c, err)
	}

	// Merge into an existing line when the product is already carted.
	found := false
	for i := range cart.Items {
		if cart.Items[i].Product == productID {
			cart.Items[i].Quantity += req.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{Product: productID, Quantity: req.Quantity})
	}
	cart.UpdatedAt = time.Now()

	if _, err := cc.carts.UpdateOne(ctx,
		bson.M{"_id": cart.Id},
		bson.M{"$set": bson.M{"user": cart.User, "items": cart.Items, "updatedAt": cart.UpdatedAt}},
		updateUpsert(),
	); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(cart)
}

type UpdateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (cc *CartController) UpdateCartItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := callerObjectID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	res, err := cc.carts.UpdateOne(ctx,
		bson.M{"user": userObjectID, "items.product": productID},
		bson.M{"$set": bson.M{"items.$.quantity": req.Quantity, "updatedAt": time.Now()}},
	)
	if err != nil {
		return responses.FromError(c, err)
	}
	if res.MatchedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Item not in cart")
	}

	return cc.GetCart(c)
}

func (cc *CartController) RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := callerObjectID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	res, err := cc.carts.UpdateOne(ctx,
		bson.M{"user": userObjectID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"product": productID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return responses.FromError(c, err)
	}
	if res.MatchedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Cart not found")
	}

	return cc.GetCart(c)
}

func (cc *CartController) ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := callerObjectID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	if _, err := cc.carts.UpdateOne(ctx,
		bson.M{"user": userObjectID},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()}},
	); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Cart cleared"})
}

func callerObjectID(c *fiber.Ctx) (primitive.ObjectID, error) {
	userId, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(userId)
}

func updateUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
