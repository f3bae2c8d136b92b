package orderController

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/models"
	"storefront-api/responses"
)

type PaymentWebhookRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// paymentSignature is the HMAC-SHA256 of "orderId|paymentId" under the shared
// webhook secret.
func paymentSignature(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// PaymentWebhook marks an order's payment completed once the provider's
// signature checks out. A pending order is confirmed at the same time.
func (oc *OrderController) PaymentWebhook(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if oc.webhookSecret == "" {
		return responses.Error(c, fiber.StatusServiceUnavailable, "Payment webhook is not configured")
	}

	var req PaymentWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	expected := paymentSignature(oc.webhookSecret, req.OrderID, req.PaymentID)
	if !hmac.Equal([]byte(req.Signature), []byte(expected)) {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid payment signature")
	}

	orderObjectID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	var order models.Order
	if err := oc.orders.FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&order); err != nil {
		return responses.Error(c, fiber.StatusNotFound, "Order not found")
	}

	set := bson.M{
		"paymentStatus": models.PaymentCompleted,
		"paymentId":     req.PaymentID,
		"updatedAt":     time.Now(),
	}
	if order.OrderStatus == models.OrderPending {
		set["orderStatus"] = models.OrderConfirmed
	}

	if _, err := oc.orders.UpdateOne(ctx, bson.M{"_id": orderObjectID}, bson.M{"$set": set}); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}
