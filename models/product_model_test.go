package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]Review{}))
	assert.Equal(t, 4.0, AverageRating([]Review{{Rating: 4}}))
	assert.InDelta(t, 3.5, AverageRating([]Review{{Rating: 3}, {Rating: 4}}), 1e-9)
	assert.InDelta(t, 4.0, AverageRating([]Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}), 1e-9)
}
