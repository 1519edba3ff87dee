package utils

import "time"

const flightTimeLayout = "2006-01-02T15:04:05"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatFlightTime renders a departure/arrival timestamp the way the
// flight-schedule provider does (no zone suffix).
func FormatFlightTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(flightTimeLayout)
}

// FormatForecastDay converts a YYYY-MM-DD forecast date into a reader-friendly
// "Monday, Jan 02" label. Returns the input unchanged if it does not parse.
func FormatForecastDay(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, Jan 02")
}

// NormalizeTravelDate accepts the date formats users type (M/D/YYYY or
// YYYY-MM-DD) and returns the YYYY/MM/DD form the schedule API expects.
// Empty or unparseable input falls back to 30 days from now.
func NormalizeTravelDate(raw string) string {
	for _, layout := range []string{"1/2/2006", "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006/01/02")
		}
	}
	return DefaultTravelDate()
}

// DefaultTravelDate is the assumed departure when a query names no date.
func DefaultTravelDate() string {
	return time.Now().AddDate(0, 0, 30).Format("2006/01/02")
}
