package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Mon: time.March}, m)

	_, err = ParseMonth("2024-13")
	assert.Error(t, err)
	_, err = ParseMonth("march")
	assert.Error(t, err)
}

func TestMonth_String(t *testing.T) {
	assert.Equal(t, "2024-03", Month{Year: 2024, Mon: time.March}.String())
	assert.Equal(t, "2020-12", Month{Year: 2020, Mon: time.December}.String())
}

func TestMonth_AddMonthsAcrossYearBoundary(t *testing.T) {
	nov := Month{Year: 2023, Mon: time.November}
	assert.Equal(t, Month{Year: 2024, Mon: time.February}, nov.AddMonths(3))
	assert.Equal(t, Month{Year: 2023, Mon: time.August}, nov.AddMonths(-3))
}

func TestMonth_MonthsUntil(t *testing.T) {
	jan20 := Month{Year: 2020, Mon: time.January}
	jan21 := Month{Year: 2021, Mon: time.January}

	assert.Equal(t, 12, jan20.MonthsUntil(jan21))
	assert.Equal(t, -12, jan21.MonthsUntil(jan20))
	assert.Equal(t, 0, jan20.MonthsUntil(jan20))
}

func TestMonth_Ordering(t *testing.T) {
	feb := Month{Year: 2024, Mon: time.February}
	mar := Month{Year: 2024, Mon: time.March}

	assert.True(t, feb.Before(mar))
	assert.True(t, mar.After(feb))
	assert.False(t, feb.Before(feb))
}

func TestMonth_JSONRoundTrip(t *testing.T) {
	point := PricePoint{Date: Month{Year: 2022, Mon: time.September}, Price: 150.25}

	data, err := json.Marshal(point)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2022-09","price":150.25}`, string(data))

	var decoded PricePoint
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, point, decoded)
}

func TestMonthOf_UsesUTC(t *testing.T) {
	// 23:30 on Jan 31 in UTC-2 is 01:30 on Feb 1 UTC.
	loc := time.FixedZone("UTC-2", -2*60*60)
	ts := time.Date(2024, time.January, 31, 23, 30, 0, 0, loc)

	assert.Equal(t, Month{Year: 2024, Mon: time.February}, MonthOf(ts))
}
