package orderController

import (
	"context"
	"log/slog"
	"strconv"
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

// OrderController converts carts into order snapshots and adjusts inventory.
// The order insert, cart clear and stock decrements run inside one session
// transaction so a failed step never leaves partial state behind.
type OrderController struct {
	client   *mongo.Client
	orders   *mongo.Collection
	carts    *mongo.Collection
	products *mongo.Collection

	// strictStatus makes the admin status update validate transitions the
	// same way cancellation does instead of acting as a free override.
	strictStatus bool

	webhookSecret string
}

func NewOrderController(db *mongo.Database, strictStatus bool, webhookSecret string) *OrderController {
	return &OrderController{
		client:        db.Client(),
		orders:        db.Collection("orders"),
		carts:         db.Collection("carts"),
		products:      db.Collection("products"),
		strictStatus:  strictStatus,
		webhookSecret: webhookSecret,
	}
}

type CreateOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"omitempty,oneof=credit_card debit_card paypal stripe"`
	PaymentStatus   string                 `json:"paymentStatus" validate:"omitempty,oneof=pending completed failed refunded"`
}

func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := callerObjectID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "credit_card"
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = models.PaymentPending
	}

	var cart models.Cart
	err = oc.carts.FindOne(ctx, bson.M{"user": userObjectID}).Decode(&cart)
	if err == mongo.ErrNoDocuments || (err == nil && len(cart.Items) == 0) {
		return responses.Error(c, fiber.StatusBadRequest, "Cart is empty")
	}
	if err != nil {
		return responses.FromError(c, err)
	}

	// Snapshot each line at the current catalog price.
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		var product models.Product
		if err := oc.products.FindOne(ctx, bson.M{"_id": line.Product}).Decode(&product); err != nil {
			if err == mongo.ErrNoDocuments {
				return responses.Error(c, fiber.StatusNotFound, "Product not found")
			}
			return responses.FromError(c, err)
		}
		items = append(items, models.OrderItem{
			Product:  product.Id,
			Quantity: line.Quantity,
			Price:    product.Price,
		})
	}

	subtotal, tax, shippingCost, total := ComputeTotals(items)

	now := time.Now()
	order := models.Order{
		Id:              primitive.NewObjectID(),
		User:            userObjectID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentStatus,
		OrderStatus:     models.OrderPending,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingCost:    shippingCost,
		Total:           total,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	session, err := oc.client.StartSession()
	if err != nil {
		return responses.FromError(c, err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := oc.orders.InsertOne(sc, order); err != nil {
			return nil, err
		}

		if _, err := oc.carts.UpdateOne(sc,
			bson.M{"_id": cart.Id},
			bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": now}},
		); err != nil {
			return nil, err
		}

		// Guarded decrement: the stock filter and the $inc are a single
		// atomic update, so concurrent orders cannot drive stock negative.
		for _, item := range order.Items {
			res, err := oc.products.UpdateOne(sc,
				bson.M{"_id": item.Product, "stock": bson.M{"$gte": item.Quantity}},
				bson.M{"$inc": bson.M{"stock": -item.Quantity}},
			)
			if err != nil {
				return nil, err
			}
			if res.MatchedCount == 0 {
				return nil, responses.NewValidation("Insufficient stock for product " + item.Product.Hex())
			}
		}
		return nil, nil
	})
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func (oc *OrderController) GetMyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userObjectID, err := callerObjectID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := oc.orders.Find(ctx, bson.M{"user": userObjectID}, findOptions)
	if err != nil {
		return responses.FromError(c, err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (oc *OrderController) GetOrderById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	var order models.Order
	if err := oc.orders.FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return responses.FromError(c, err)
	}

	// Owner or admin only.
	userId, _ := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	if order.User.Hex() != userId && role != models.RoleAdmin {
		return responses.Error(c, fiber.StatusForbidden, "Not authorized")
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (oc *OrderController) GetAllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	status := c.Query("status")
	page, limit := parsePagination(c.Query("page", "1"), c.Query("limit", "10"))
	skip := (page - 1) * limit

	filter := bson.M{}
	if status != "" {
		filter["orderStatus"] = status
	}

	totalOrders, err := oc.orders.CountDocuments(ctx, filter)
	if err != nil {
		return responses.FromError(c, err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := oc.orders.Find(ctx, filter, findOptions)
	if err != nil {
		return responses.FromError(c, err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"orders":      orders,
		"totalOrders": totalOrders,
		"totalPages":  TotalPages(totalOrders, limit),
		"currentPage": page,
	})
}

type UpdateOrderStatusRequest struct {
	OrderStatus    string `json:"orderStatus" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
	TrackingNumber string `json:"trackingNumber"`
	Notes          string `json:"notes"`
}

func (oc *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if oc.strictStatus {
		var current models.Order
		if err := oc.orders.FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&current); err != nil {
			if err == mongo.ErrNoDocuments {
				return responses.Error(c, fiber.StatusNotFound, "Order not found")
			}
			return responses.FromError(c, err)
		}
		if !models.CanTransition(current.OrderStatus, req.OrderStatus) {
			return responses.Error(c, fiber.StatusBadRequest,
				"Cannot change order status from "+current.OrderStatus+" to "+req.OrderStatus)
		}
	}

	update := bson.M{"$set": bson.M{
		"orderStatus":    req.OrderStatus,
		"trackingNumber": req.TrackingNumber,
		"notes":          req.Notes,
		"updatedAt":      time.Now(),
	}}

	var order models.Order
	err = oc.orders.FindOneAndUpdate(ctx,
		bson.M{"_id": orderObjectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Order not found")
	}
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (oc *OrderController) CancelOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	var order models.Order
	if err := oc.orders.FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return responses.FromError(c, err)
	}

	if !models.CanCancel(order.OrderStatus) {
		return responses.Error(c, fiber.StatusBadRequest, "Cannot cancel this order")
	}

	now := time.Now()

	session, err := oc.client.StartSession()
	if err != nil {
		return responses.FromError(c, err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// Put every ordered quantity back on the shelf.
		for _, item := range order.Items {
			if _, err := oc.products.UpdateOne(sc,
				bson.M{"_id": item.Product},
				bson.M{"$inc": bson.M{"stock": item.Quantity}},
			); err != nil {
				return nil, err
			}
		}

		// Guard on the status we read so a concurrent transition loses.
		res, err := oc.orders.UpdateOne(sc,
			bson.M{"_id": order.Id, "orderStatus": order.OrderStatus},
			bson.M{"$set": bson.M{"orderStatus": models.OrderCancelled, "updatedAt": now}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, responses.NewInvalidTransition("Cannot cancel this order")
		}
		return nil, nil
	})
	if err != nil {
		slog.Error("cancel order", "order", order.Id.Hex(), "err", err)
		return responses.FromError(c, err)
	}

	order.OrderStatus = models.OrderCancelled
	order.UpdatedAt = now

	return c.Status(fiber.StatusOK).JSON(order)
}

func callerObjectID(c *fiber.Ctx) (primitive.ObjectID, error) {
	userId, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(userId)
}

func parsePagination(pageStr, limitStr string) (page, limit int64) {
	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int64) int64 {
	return (total + limit - 1) / limit
}
