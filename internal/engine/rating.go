package engine

import (
	"math"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// applyRating folds one new rating into the user's running average without
// storing the rating history:
//
//	newCount = count + 1
//	newAvg   = round2((avg*count + rating) / newCount)
//
// The recurrence operates on the already-rounded average, so rounding drift
// accumulates over many ratings. That is intentional: O(1) space is traded
// for perfect numerical reproducibility, and the drift is part of the
// observable contract.
func applyRating(user *domain.User, rating int) {
	total := user.AvgRating*float64(user.RatingsCount) + float64(rating)
	user.RatingsCount++
	user.AvgRating = round2(total / float64(user.RatingsCount))
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
