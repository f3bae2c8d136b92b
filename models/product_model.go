package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	User      primitive.ObjectID `bson:"user" json:"user"`
	Rating    float64            `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ImageSet holds the original upload URL and its derived variants.
type ImageSet struct {
	OriginalURL  string `bson:"originalUrl" json:"originalUrl"`
	ThumbnailURL string `bson:"thumbnailUrl" json:"thumbnailUrl"`
	MediumURL    string `bson:"mediumUrl" json:"mediumUrl"`
	LargeURL     string `bson:"largeUrl" json:"largeUrl"`
}

type Product struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Description   string             `bson:"description" json:"description" validate:"required"`
	Price         float64            `bson:"price" json:"price" validate:"required,gt=0"`
	OriginalPrice *float64           `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Category      primitive.ObjectID `bson:"category" json:"category" validate:"required"`
	CategoryInfo  *Category          `bson:"categoryInfo,omitempty" json:"categoryInfo,omitempty"`
	Stock         int                `bson:"stock" json:"stock"`
	Sizes         []string           `bson:"sizes" json:"sizes"`
	Colors        []string           `bson:"colors" json:"colors"`
	IsFeatured    bool               `bson:"isFeatured" json:"isFeatured"`
	IsNew         bool               `bson:"isNew" json:"isNew"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       []Review           `bson:"reviews" json:"reviews"`
	Images        []ImageSet         `bson:"images" json:"images"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AverageRating is the derived product rating: the arithmetic mean of all
// review ratings, zero when there are none.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
