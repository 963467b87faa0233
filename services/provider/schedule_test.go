package provider

import (
	"testing"
	"time"
)

func TestDateBeforeDay(t *testing.T) {
	// 01:00 UTC on March 1st is still the evening of February 28th
	// five hours west of Greenwich.
	nyc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date string
		loc  *time.Location
		want bool
	}{
		{"yesterday in UTC", "2026-02-28", time.UTC, true},
		{"today in UTC", "2026-03-01", time.UTC, false},
		{"tomorrow in UTC", "2026-03-02", time.UTC, false},
		// Local calendar day lags UTC: Feb 28 must still count as today.
		{"local today across midnight", "2026-02-28", nyc, false},
		{"local yesterday across midnight", "2026-02-27", nyc, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dateBeforeDay(tc.date, now, tc.loc); got != tc.want {
				t.Errorf("dateBeforeDay(%q, %v, %v) = %v, want %v",
					tc.date, now, tc.loc, got, tc.want)
			}
		})
	}
}
