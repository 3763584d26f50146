package services

import (
	"strings"

	"food-storefront/models"
)

const (
	DefaultReviewer = "me"
	MaxStars        = 5
)

// ReviewCollector keeps the reviews shown on one details view. It starts from
// a copy of the item's reviews and is dropped when the user leaves the view.
type ReviewCollector struct {
	item    models.FoodItem
	user    string
	reviews []models.Review
	rating  int
}

func NewReviewCollector(item models.FoodItem, user string) *ReviewCollector {
	if strings.TrimSpace(user) == "" {
		user = DefaultReviewer
	}
	reviews := make([]models.Review, len(item.Reviews))
	copy(reviews, item.Reviews)
	return &ReviewCollector{item: item, user: user, reviews: reviews}
}

func (r *ReviewCollector) Item() models.FoodItem {
	return cloneItem(r.item)
}

// SetRating records the star picker value, clamped to 0..MaxStars.
func (r *ReviewCollector) SetRating(stars int) {
	r.rating = clampStars(stars)
}

func (r *ReviewCollector) Rating() int {
	return r.rating
}

// Submit appends a review. An empty comment is ignored and Submit returns false.
func (r *ReviewCollector) Submit(comment string, stars int) bool {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return false
	}
	r.reviews = append(r.reviews, models.Review{User: r.user, Comment: comment, Stars: clampStars(stars)})
	return true
}

// SubmitWithRating submits using the picked rating and resets the picker.
func (r *ReviewCollector) SubmitWithRating(comment string) bool {
	if !r.Submit(comment, r.rating) {
		return false
	}
	r.rating = 0
	return true
}

func (r *ReviewCollector) Reviews() []models.Review {
	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)
	return out
}

// Average is the mean of the starred reviews, or the item's catalog rating
// when no review carries stars.
func (r *ReviewCollector) Average() float64 {
	sum, n := 0, 0
	for _, rev := range r.reviews {
		if rev.Stars > 0 {
			sum += rev.Stars
			n++
		}
	}
	if n == 0 {
		return r.item.Rating
	}
	return float64(sum) / float64(n)
}

func clampStars(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}
