package booking

import (
	"strings"
	"time"
)

// CancellationWindow is how close to the slot start a customer may still
// cancel. The check is strictly greater-than: at exactly three hours out
// cancellation is refused.
const CancellationWindow = 3 * time.Hour

const dateLayout = "2006-01-02"

// SlotStartTime resolves a schedule date plus a slot label to the slot's
// starting instant. Labels are the literal seeded strings; the start is
// everything before the first dash, trimmed, in "h:mm am/pm" form. The
// two malformed midday labels still parse because only the prefix is read.
func SlotStartTime(date, slotLabel string, loc *time.Location) (time.Time, error) {
	start, _, _ := strings.Cut(slotLabel, "-")
	start = strings.TrimSpace(start)
	// Normalize "12:00am" style suffixes the seeded list contains.
	if !strings.Contains(start, " ") {
		if cut, found := strings.CutSuffix(start, "am"); found {
			start = cut + " am"
		} else if cut, found := strings.CutSuffix(start, "pm"); found {
			start = cut + " pm"
		}
	}

	t, err := time.ParseInLocation(dateLayout+" 3:04 pm", date+" "+start, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Cancellable reports whether a booking whose slot starts at slotStart
// may still be cancelled at now.
func Cancellable(slotStart, now time.Time) bool {
	return slotStart.Sub(now) > CancellationWindow
}
