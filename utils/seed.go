package utils

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/models"
)

// SeedCategories inserts the default catalog categories when the collection
// is empty. Safe to call on every startup.
func SeedCategories(categories *mongo.Collection) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		slog.Error("counting categories", "err", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := []interface{}{
		models.Category{Name: "Clothes", Description: "Clothing items"},
		models.Category{Name: "Wigs", Description: "Hair wigs"},
		models.Category{Name: "Perfumes", Description: "Fragrances and perfumes"},
	}

	if _, err := categories.InsertMany(ctx, defaults); err != nil {
		slog.Error("seeding categories", "err", err)
		return
	}
	slog.Info("default categories created")
}
