package services

import (
	"testing"

	"food-storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewSubmitEmptyIsNoop(t *testing.T) {
	rc := NewReviewCollector(shrimp, "")
	before := rc.Reviews()

	assert.False(t, rc.Submit("", 3))
	assert.False(t, rc.Submit("   ", 3))
	assert.Equal(t, before, rc.Reviews())
}

func TestReviewSubmitAppendsOne(t *testing.T) {
	rc := NewReviewCollector(shrimp, "")
	require.True(t, rc.Submit(" tasty ", 4))

	reviews := rc.Reviews()
	require.Len(t, reviews, 2)
	assert.Equal(t, models.Review{User: DefaultReviewer, Comment: "tasty", Stars: 4}, reviews[1])
}

func TestReviewsDoNotLeakIntoItem(t *testing.T) {
	catalog := DefaultCatalog()
	item, err := catalog.Item("1")
	require.NoError(t, err)

	rc := NewReviewCollector(item, "me")
	rc.Submit("great", 5)

	again, _ := catalog.Item("1")
	assert.Len(t, again.Reviews, 1)
	assert.Len(t, item.Reviews, 1)
}

func TestReviewStarsClamped(t *testing.T) {
	rc := NewReviewCollector(burger, "me")
	rc.Submit("too many", 9)
	rc.Submit("negative", -2)
	reviews := rc.Reviews()
	assert.Equal(t, MaxStars, reviews[0].Stars)
	assert.Equal(t, 0, reviews[1].Stars)
}

func TestSubmitWithRatingResetsPicker(t *testing.T) {
	rc := NewReviewCollector(burger, "me")
	rc.SetRating(3)
	assert.False(t, rc.SubmitWithRating(""))
	assert.Equal(t, 3, rc.Rating(), "rejected submit keeps the pick")

	assert.True(t, rc.SubmitWithRating("nice"))
	assert.Equal(t, 0, rc.Rating())
	assert.Equal(t, 3, rc.Reviews()[0].Stars)
}

func TestReviewAverage(t *testing.T) {
	item := models.FoodItem{ID: "x", Rating: 4.2}
	rc := NewReviewCollector(item, "me")
	assert.InDelta(t, 4.2, rc.Average(), 1e-9)

	rc.Submit("no stars", 0)
	assert.InDelta(t, 4.2, rc.Average(), 1e-9)

	rc.Submit("good", 4)
	rc.Submit("ok", 3)
	assert.InDelta(t, 3.5, rc.Average(), 1e-9)
}
