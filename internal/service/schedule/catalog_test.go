package schedule

import (
	"testing"
	"time"
)

func TestSubtract(t *testing.T) {
	tests := []struct {
		name   string
		booked []string
		want   []string
	}{
		{
			name:   "nothing booked returns full catalog",
			booked: nil,
			want:   Slots(),
		},
		{
			name:   "booked slots removed in order",
			booked: []string{"09:30", "17:00"},
			want: []string{
				"09:00", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
				"17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30",
			},
		},
		{
			name:   "fully booked day yields empty, not nil error",
			booked: Slots(),
			want:   []string{},
		},
		{
			name:   "unknown labels ignored",
			booked: []string{"08:00", "13:00"},
			want:   Slots(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(tt.booked)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d slots, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("slot[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range Slots() {
		if !IsValidSlot(s) {
			t.Errorf("catalog slot %q reported invalid", s)
		}
	}
	for _, s := range []string{"", "9:00", "13:00", "09:15", "21:00"} {
		if IsValidSlot(s) {
			t.Errorf("non-catalog label %q reported valid", s)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !d.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v, want midnight UTC", d)
	}

	if _, err := ParseDate("10-03-2025"); err != ErrInvalidDate {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
	if _, err := ParseDate("not-a-date"); err != ErrInvalidDate {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
}

func TestSlotStart(t *testing.T) {
	date := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC) // time-of-day ignored
	got := SlotStart(date, "17:30")
	want := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2025, 3, 10, 23, 59, 59, 0, time.FixedZone("IRST", 3*3600+1800))
	got := NormalizeDate(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Errorf("got %v, want midnight UTC", got)
	}
}
