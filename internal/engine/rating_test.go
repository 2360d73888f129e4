package engine

import (
	"testing"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/stretchr/testify/assert"
)

func TestApplyRating(t *testing.T) {
	tests := []struct {
		name      string
		avg       float64
		count     int
		rating    int
		wantAvg   float64
		wantCount int
	}{
		{
			name:   "first rating",
			avg:    0, count: 0, rating: 4,
			wantAvg: 4, wantCount: 1,
		},
		{
			name:   "established average moves slightly",
			avg:    4.8, count: 10, rating: 5,
			// (4.8*10 + 5) / 11 = 4.8181.. -> 4.82
			wantAvg: 4.82, wantCount: 11,
		},
		{
			name:   "non-terminating decimal rounds to 2 places",
			avg:    4.5, count: 2, rating: 5,
			// 14/3 = 4.666.. -> 4.67
			wantAvg: 4.67, wantCount: 3,
		},
		{
			name:   "low rating drags average down",
			avg:    4.9, count: 25, rating: 1,
			// 123.5/26 = 4.75
			wantAvg: 4.75, wantCount: 26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{AvgRating: tt.avg, RatingsCount: tt.count}

			applyRating(user, tt.rating)

			assert.Equal(t, tt.wantAvg, user.AvgRating)
			assert.Equal(t, tt.wantCount, user.RatingsCount)
		})
	}
}

func TestApplyRating_IncrementalRecurrence(t *testing.T) {
	t.Run("average always matches the step-by-step recurrence", func(t *testing.T) {
		user := &domain.User{}
		for _, step := range []struct {
			rating  int
			wantAvg float64
		}{
			{5, 5},
			{4, 4.5},
			{5, 4.67}, // 14/3, rounded
			{4, 4.5},  // (4.67*3+4)/4 = 18.01/4 = 4.5025 -> 4.5
			{3, 4.2},  // (4.5*4+3)/5 = 21/5
		} {
			applyRating(user, step.rating)
			assert.Equal(t, step.wantAvg, user.AvgRating)
		}
		assert.Equal(t, 5, user.RatingsCount)
	})

	t.Run("rounding drift diverges from recomputed mean", func(t *testing.T) {
		// The recurrence operates on the already-rounded average, so the
		// result can differ from rounding the true mean of the history.
		user := &domain.User{}
		for _, rating := range []int{1, 1, 1, 1, 1, 2, 1} {
			applyRating(user, rating)
		}

		// Incremental: after the 2 the average is 7/6 -> 1.17, then
		// (1.17*6 + 1)/7 = 8.02/7 = 1.1457.. -> 1.15.
		assert.Equal(t, 1.15, user.AvgRating)

		// A recomputation from history would give 8/7 = 1.1428.. -> 1.14.
		assert.NotEqual(t, round2(8.0/7.0), user.AvgRating)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.82, round2(4.8181818))
	assert.Equal(t, 4.67, round2(14.0/3.0))
	assert.Equal(t, 1.15, round2(8.02/7.0))
	assert.Equal(t, 5.0, round2(5))
	assert.Equal(t, 0.0, round2(0))
}
