package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFlightTime(t *testing.T) {
	ts := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-01T10:30:00", FormatFlightTime(ts))
	assert.Empty(t, FormatFlightTime(time.Time{}))
}

func TestFormatForecastDay(t *testing.T) {
	assert.Equal(t, "Monday, Sep 07", FormatForecastDay("2026-09-07"))
	assert.Equal(t, "not-a-date", FormatForecastDay("not-a-date"))
}

func TestNormalizeTravelDate(t *testing.T) {
	assert.Equal(t, "2026/09/15", NormalizeTravelDate("9/15/2026"))
	assert.Equal(t, "2026/09/15", NormalizeTravelDate("2026-09-15"))
	assert.Equal(t, "2026/09/15", NormalizeTravelDate("2026/09/15"))

	// Unparseable input falls back to the default departure window.
	fallback := NormalizeTravelDate("someday soon")
	parsed, err := time.Parse("2006/01/02", fallback)
	assert.NoError(t, err)
	assert.True(t, parsed.After(time.Now()))
}
