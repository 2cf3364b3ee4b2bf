package format

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/construction-map/internal/domain"
)

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '-' {
			return r
		}
		return -1
	}, s)
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		digits string
	}{
		{name: "zero", amount: 0, digits: "0"},
		{name: "thousands", amount: 1500, digits: "1500"},
		{name: "billions", amount: 21400000000, digits: "21400000000"},
		{name: "negative is not rejected", amount: -2500, digits: "-2500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Currency(tt.amount)
			assert.True(t, strings.HasSuffix(out, CurrencySeparator+CurrencySymbol), out)
			assert.Equal(t, tt.digits, digitsOnly(out))
			assert.NotContains(t, out, ",", "no fractional part expected")
		})
	}
}

func TestCurrency_NonBreakingSeparator(t *testing.T) {
	out := Currency(1500)

	assert.True(t, strings.HasSuffix(out, "\u00a0₸"), "%q", out)
	assert.NotContains(t, out, " ₸", "%q", out)
}

func TestCurrency_GroupsDigits(t *testing.T) {
	out := strings.TrimSuffix(Currency(12500000000), CurrencySeparator+CurrencySymbol)

	assert.NotEqual(t, "12500000000", out, "thousands must be separated")
}

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "iso date", input: "2025-04-10", expected: "10 апр. 2025 г."},
		{name: "may uses genitive", input: "2026-05-01", expected: "1 мая 2026 г."},
		{name: "december", input: "2026-12-01", expected: "1 дек. 2026 г."},
		{name: "rfc3339", input: "2024-10-20T00:00:00Z", expected: "20 окт. 2024 г."},
		{name: "empty gives placeholder", input: "", expected: Placeholder},
		{name: "blank returned unchanged", input: "   ", expected: "   "},
		{name: "invalid returned unchanged", input: "not-a-date", expected: "not-a-date"},
		{name: "out of range returned unchanged", input: "2025-13-45", expected: "2025-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Date(tt.input))
		})
	}
}

func TestCentroid(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := Centroid(nil)
		assert.False(t, ok)

		_, ok = Centroid([]domain.LatLng{})
		assert.False(t, ok)
	})

	t.Run("arithmetic mean of vertices", func(t *testing.T) {
		points := []domain.LatLng{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 4},
			{Lat: 2, Lng: 4},
			{Lat: 2, Lng: 0},
		}

		c, ok := Centroid(points)
		assert.True(t, ok)
		assert.Equal(t, domain.LatLng{Lat: 1, Lng: 2}, c)
	})

	t.Run("unweighted mean, not area centroid", func(t *testing.T) {
		// лишняя вершина на стороне смещает среднее, в отличие от центра масс
		points := []domain.LatLng{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 1},
			{Lat: 0, Lng: 2},
			{Lat: 3, Lng: 0},
		}

		c, ok := Centroid(points)
		assert.True(t, ok)
		assert.InDelta(t, 0.75, c.Lat, 1e-12)
		assert.InDelta(t, 0.75, c.Lng, 1e-12)
	})

	t.Run("single point", func(t *testing.T) {
		c, ok := Centroid([]domain.LatLng{{Lat: 43.68, Lng: 51.14}})
		assert.True(t, ok)
		assert.Equal(t, domain.LatLng{Lat: 43.68, Lng: 51.14}, c)
	})
}
