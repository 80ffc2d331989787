package review

import (
	"vendora/models"
	"vendora/utils"
)

// Aggregate computes the aggregate rating for a set of reviews: the arithmetic
// mean of all ratings rounded half-up to one decimal, and the set's size.
// Flagged reviews count; flagging is moderation metadata, not an aggregation
// filter. ok is false for an empty set, in which case the stored rating must be
// left untouched.
func Aggregate(reviews []models.Review) (rating float64, count int, ok bool) {
	if len(reviews) == 0 {
		return 0, 0, false
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return utils.RoundHalfUp(mean, 1), len(reviews), true
}
