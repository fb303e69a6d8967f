package service

import (
	"math"

	"github.com/invested-dashboard/backend/internal/model"
)

// Densify expands a sparse, ascending, de-duplicated price history into an
// exactly monthly series. Gaps wider than one month are filled by linear
// interpolation between the surrounding samples, with interpolated prices
// rounded to two decimals. Empty and single-point histories are returned
// unchanged. Input that is unsorted or contains duplicate months is the
// caller's bug.
func Densify(history []model.PricePoint) []model.PricePoint {
	if len(history) == 0 {
		return history
	}

	out := make([]model.PricePoint, 0, len(history))
	for i := 0; i < len(history)-1; i++ {
		current, next := history[i], history[i+1]
		out = append(out, current)

		gap := current.Date.MonthsUntil(next.Date)
		if gap <= 1 {
			continue
		}

		step := (next.Price - current.Price) / float64(gap)
		for j := 1; j < gap; j++ {
			out = append(out, model.PricePoint{
				Date:  current.Date.AddMonths(j),
				Price: roundPrice(current.Price + step*float64(j)),
			})
		}
	}

	return append(out, history[len(history)-1])
}

// roundPrice rounds a price to two decimal places.
func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
