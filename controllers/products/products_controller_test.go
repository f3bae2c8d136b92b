package productController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilter(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		filter, err := BuildProductFilter("", "")
		require.NoError(t, err)
		assert.Empty(t, filter)
	})

	t.Run("category", func(t *testing.T) {
		id := primitive.NewObjectID()
		filter, err := BuildProductFilter(id.Hex(), "")
		require.NoError(t, err)
		assert.Equal(t, id, filter["category"])
	})

	t.Run("invalid category", func(t *testing.T) {
		_, err := BuildProductFilter("not-an-id", "")
		require.Error(t, err)
	})

	t.Run("search over name and description", func(t *testing.T) {
		filter, err := BuildProductFilter("", "wig")
		require.NoError(t, err)
		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 2)
		assert.Equal(t, bson.M{"name": bson.M{"$regex": "wig", "$options": "i"}}, or[0])
		assert.Equal(t, bson.M{"description": bson.M{"$regex": "wig", "$options": "i"}}, or[1])
	})
}

func TestBuildSortOption(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, BuildSortOption("price_low"))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, BuildSortOption("price_high"))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, BuildSortOption("newest"))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, BuildSortOption("rating"))
	assert.Nil(t, BuildSortOption(""))
	assert.Nil(t, BuildSortOption("alphabetical"))
}
