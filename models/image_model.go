package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image records an upload and its derived variants. Created once, never
// mutated.
type Image struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OriginalURL  string             `bson:"originalUrl" json:"originalUrl"`
	ThumbnailURL string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	MediumURL    string             `bson:"mediumUrl" json:"mediumUrl"`
	LargeURL     string             `bson:"largeUrl" json:"largeUrl"`
	Product      primitive.ObjectID `bson:"product" json:"product"`
	UploadedAt   time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
