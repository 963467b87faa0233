package booking

import (
	"testing"
	"time"
)

func TestSlotStartTime(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"8:00 am-9:00 am", "2026-03-14T08:00:00"},
		{"1:00 pm-2:00 pm", "2026-03-14T13:00:00"},
		{"6:00 pm-7:00 pm", "2026-03-14T18:00:00"},
		// The seeded list contains two malformed labels; only the start
		// prefix is parsed, so they still resolve.
		{"11:00 am-12:00am", "2026-03-14T11:00:00"},
		{"12:00 am -1:00 am", "2026-03-14T00:00:00"},
	}

	for _, tc := range cases {
		got, err := SlotStartTime("2026-03-14", tc.label, time.UTC)
		if err != nil {
			t.Fatalf("SlotStartTime(%q): %v", tc.label, err)
		}
		if got.Format("2006-01-02T15:04:05") != tc.want {
			t.Errorf("SlotStartTime(%q) = %s, want %s", tc.label, got.Format(time.RFC3339), tc.want)
		}
	}
}

func TestSlotStartTimeInvalid(t *testing.T) {
	if _, err := SlotStartTime("2026-03-14", "not a slot", time.UTC); err == nil {
		t.Fatal("expected error for unparseable label")
	}
	if _, err := SlotStartTime("14-03-2026", "8:00 am-9:00 am", time.UTC); err == nil {
		t.Fatal("expected error for bad date format")
	}
}

func TestCancellable(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		slotStart time.Time
		want      bool
	}{
		{"well before the window", now.Add(5 * time.Hour), true},
		{"just over three hours", now.Add(3*time.Hour + time.Minute), true},
		{"exactly three hours", now.Add(3 * time.Hour), false},
		{"inside the window", now.Add(2 * time.Hour), false},
		{"already started", now.Add(-time.Hour), false},
	}

	for _, tc := range cases {
		if got := Cancellable(tc.slotStart, now); got != tc.want {
			t.Errorf("%s: Cancellable = %v, want %v", tc.name, got, tc.want)
		}
	}
}
