package imageController

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/models"
	"storefront-api/responses"
	"storefront-api/storage"
)

type ImageController struct {
	images   *mongo.Collection
	products *mongo.Collection
	store    *storage.DiskStore
}

func NewImageController(db *mongo.Database, store *storage.DiskStore) *ImageController {
	return &ImageController{
		images:   db.Collection("images"),
		products: db.Collection("products"),
		store:    store,
	}
}

// UploadImage stores the original and its derived variants, records an Image
// document and pushes the URL set onto the product. A productId that is not a
// valid id still returns the generated URLs so a product can be created with
// them afterwards.
func (ic *ImageController) UploadImage(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "No file uploaded")
	}

	productId := c.FormValue("productId")
	if productId == "" {
		return responses.Error(c, fiber.StatusBadRequest, "productId is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return responses.FromError(c, err)
	}
	defer file.Close()

	variants, err := ic.store.Save(file)
	if err != nil {
		return responses.FromError(c, err)
	}

	urls := models.ImageSet{
		OriginalURL:  variants.Original,
		ThumbnailURL: variants.Thumbnail,
		MediumURL:    variants.Medium,
		LargeURL:     variants.Large,
	}

	productObjectID, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		// Upload before the product exists: hand back the URLs only.
		return c.Status(fiber.StatusCreated).JSON(urls)
	}

	image := models.Image{
		Id:           primitive.NewObjectID(),
		OriginalURL:  urls.OriginalURL,
		ThumbnailURL: urls.ThumbnailURL,
		MediumURL:    urls.MediumURL,
		LargeURL:     urls.LargeURL,
		Product:      productObjectID,
		UploadedAt:   time.Now(),
	}

	if _, err := ic.images.InsertOne(ctx, image); err != nil {
		slog.Error("saving image document", "err", err)
		// The files are already stored; return the URLs regardless.
		return c.Status(fiber.StatusCreated).JSON(urls)
	}

	if _, err := ic.products.UpdateOne(ctx,
		bson.M{"_id": productObjectID},
		bson.M{"$push": bson.M{"images": urls}},
	); err != nil {
		slog.Error("attaching image to product", "product", productId, "err", err)
	}

	return c.Status(fiber.StatusCreated).JSON(image)
}

func (ic *ImageController) GetImagesByProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjectID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	cursor, err := ic.images.Find(ctx, bson.M{"product": productObjectID})
	if err != nil {
		return responses.FromError(c, err)
	}

	images := []models.Image{}
	if err := cursor.All(ctx, &images); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(images)
}
