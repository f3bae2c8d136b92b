package adminController

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/cache"
	"storefront-api/models"
	"storefront-api/responses"
)

const statsCacheTTL = 60 * time.Second

// AdminController serves the dashboard reporting queries. Everything here is
// a pure read over the orders, products and users collections.
type AdminController struct {
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection

	statsCache *cache.RedisCache
}

func NewAdminController(db *mongo.Database, statsCache *cache.RedisCache) *AdminController {
	return &AdminController{
		users:      db.Collection("users"),
		products:   db.Collection("products"),
		orders:     db.Collection("orders"),
		statsCache: statsCache,
	}
}

func (ac *AdminController) DashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cacheKey := ac.statsCache.GenerateKey("dashboard", "stats")
	if cached, err := ac.statsCache.Get(ctx, cacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).SendString(cached)
	}

	totalUsers, err := ac.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return responses.FromError(c, err)
	}
	totalProducts, err := ac.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return responses.FromError(c, err)
	}
	totalOrders, err := ac.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return responses.FromError(c, err)
	}

	// Revenue counts completed payments only.
	revenuePipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"paymentStatus": models.PaymentCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
		}}},
	}
	totalRevenue, err := ac.sumPipeline(ctx, revenuePipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	statusPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$orderStatus",
			"count": bson.M{"$sum": 1},
		}}},
	}
	ordersByStatus, err := ac.aggregate(ctx, ac.orders, statusPipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	topPipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$items"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$items.product",
			"totalQuantity": bson.M{"$sum": "$items.quantity"},
			"totalRevenue":  bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalQuantity": -1}}},
		bson.D{{Key: "$limit", Value: 5}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "product",
		}}},
	}
	topProducts, err := ac.aggregate(ctx, ac.orders, topPipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	stats := fiber.Map{
		"totalUsers":     totalUsers,
		"totalProducts":  totalProducts,
		"totalOrders":    totalOrders,
		"totalRevenue":   totalRevenue,
		"ordersByStatus": ordersByStatus,
		"topProducts":    topProducts,
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := ac.statsCache.Set(ctx, cacheKey, payload, statsCacheTTL); err != nil {
			slog.Warn("caching dashboard stats", "err", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// PeriodStart returns the lower bound of a sales window relative to now.
// Unknown periods fall back to a month, the original default.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7)
	case "year":
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

func (ac *AdminController) SalesData(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	startDate := PeriodStart(c.Query("period", "month"), time.Now())

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"createdAt":     bson.M{"$gte": startDate},
			"paymentStatus": models.PaymentCompleted,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":        bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"totalSales": bson.M{"$sum": "$total"},
			"orderCount": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	salesData, err := ac.aggregate(ctx, ac.orders, pipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(salesData)
}

func (ac *AdminController) RevenueStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"paymentStatus": models.PaymentCompleted}}},
		bson.D{{Key: "$unwind", Value: "$items"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "items.product",
			"foreignField": "_id",
			"as":           "product",
		}}},
		bson.D{{Key: "$unwind", Value: "$product"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "product.category",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: "$category"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$category.name",
			"totalRevenue": bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}},
			"orderCount":   bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalRevenue": -1}}},
	}

	revenueByCategory, err := ac.aggregate(ctx, ac.orders, pipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(revenueByCategory)
}

const lowStockThreshold = 10

func (ac *AdminController) LowStockProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"stock": bson.M{"$lte": lowStockThreshold}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryInfo",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$categoryInfo",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"stock": 1}}},
	}

	cursor, err := ac.products.Aggregate(ctx, pipeline)
	if err != nil {
		return responses.FromError(c, err)
	}

	lowStock := []models.Product{}
	if err := cursor.All(ctx, &lowStock); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lowStock)
}

func (ac *AdminController) aggregate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (ac *AdminController) sumPipeline(ctx context.Context, pipeline mongo.Pipeline) (float64, error) {
	cursor, err := ac.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
