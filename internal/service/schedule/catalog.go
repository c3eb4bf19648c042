package schedule

import "time"

// The clinic works two shifts a day. Slots are half-hour labels in
// chronological order; the catalog is static configuration, not data.
var catalog = []string{
	// Morning shift 09:00 – 12:30
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	// Evening shift 17:00 – 20:30
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30",
}

var catalogIndex = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, s := range catalog {
		m[s] = i
	}
	return m
}()

// Slots returns the full slot catalog in chronological order.
func Slots() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// IsValidSlot reports whether label is one of the catalog slots.
func IsValidSlot(label string) bool {
	_, ok := catalogIndex[label]
	return ok
}

// Subtract returns the catalog minus the given booked labels, preserving
// catalog order. Unknown labels in booked are ignored.
func Subtract(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}
	out := make([]string, 0, len(catalog))
	for _, s := range catalog {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeDate truncates t to midnight UTC. Dates are stored and
// compared in this form.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return NormalizeDate(t), nil
}

// SlotStart combines a normalized date with a slot label into the
// appointment's wall-clock start time (UTC).
func SlotStart(date time.Time, label string) time.Time {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return NormalizeDate(date)
	}
	d := NormalizeDate(date)
	return d.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}
