package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invested-dashboard/backend/internal/model"
)

func month(year, mon int) model.Month {
	return model.Month{Year: year, Mon: time.Month(mon)}
}

func TestDensify_FillsThreeMonthGap(t *testing.T) {
	history := []model.PricePoint{
		{Date: month(2020, 1), Price: 100},
		{Date: month(2020, 4), Price: 130},
	}

	out := Densify(history)

	expected := []model.PricePoint{
		{Date: month(2020, 1), Price: 100},
		{Date: month(2020, 2), Price: 110},
		{Date: month(2020, 3), Price: 120},
		{Date: month(2020, 4), Price: 130},
	}
	assert.Equal(t, expected, out)
}

func TestDensify_RoundsInterpolatedPrices(t *testing.T) {
	history := []model.PricePoint{
		{Date: month(2020, 1), Price: 100},
		{Date: month(2020, 4), Price: 101},
	}

	out := Densify(history)

	assert.Len(t, out, 4)
	assert.Equal(t, 100.33, out[1].Price)
	assert.Equal(t, 100.67, out[2].Price)
}

func TestDensify_EmptyAndSingleInputUnchanged(t *testing.T) {
	assert.Empty(t, Densify(nil))
	assert.Empty(t, Densify([]model.PricePoint{}))

	single := []model.PricePoint{{Date: month(2024, 1), Price: 42.5}}
	assert.Equal(t, single, Densify(single))
}

func TestDensify_AdjacentMonthsPassThrough(t *testing.T) {
	history := []model.PricePoint{
		{Date: month(2023, 11), Price: 10},
		{Date: month(2023, 12), Price: 20},
		{Date: month(2024, 1), Price: 30},
	}

	assert.Equal(t, history, Densify(history))
}

func TestDensify_OutputHasNoGaps(t *testing.T) {
	history := []model.PricePoint{
		{Date: month(2020, 1), Price: 77.38},
		{Date: month(2021, 1), Price: 132.05},
		{Date: month(2022, 1), Price: 174.78},
		{Date: month(2022, 6), Price: 140.00},
		{Date: month(2024, 12), Price: 175.43},
	}

	out := Densify(history)

	for i := 1; i < len(out); i++ {
		gap := out[i-1].Date.MonthsUntil(out[i].Date)
		assert.Equal(t, 1, gap, "gap between %s and %s", out[i-1].Date, out[i].Date)
	}
	assert.Equal(t, history[0], out[0])
	assert.Equal(t, history[len(history)-1], out[len(out)-1])
}
