package utils

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:30am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q) = %d, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWeekdayMon0(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{date: "2024-01-01", want: 0}, // Monday
		{date: "2024-01-02", want: 1},
		{date: "2024-01-03", want: 2},
		{date: "2024-01-06", want: 5}, // Saturday
		{date: "2024-01-07", want: 6}, // Sunday
	}

	for _, tt := range tests {
		got, err := WeekdayMon0(tt.date)
		if err != nil {
			t.Fatalf("WeekdayMon0(%q) error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("WeekdayMon0(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}

	if _, err := WeekdayMon0("not-a-date"); err == nil {
		t.Error("WeekdayMon0 accepted a malformed date")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-02-28", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-03-01" { // 2024 is a leap year
		t.Errorf("AddDays(2024-02-28, 2) = %s, want 2024-03-01", got)
	}

	got, err = AddDays("2024-01-01", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2023-12-31" {
		t.Errorf("AddDays(2024-01-01, -1) = %s, want 2023-12-31", got)
	}
}

func TestWeekStartMonday(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "2024-06-10", want: "2024-06-10"}, // already Monday
		{date: "2024-06-12", want: "2024-06-10"},
		{date: "2024-06-16", want: "2024-06-10"}, // Sunday belongs to the preceding Monday
	}
	for _, tt := range tests {
		got, err := WeekStartMonday(tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("WeekStartMonday(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestRangeDays(t *testing.T) {
	got, err := RangeDays("2024-06-10", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-06-10", "2024-06-11", "2024-06-12"}
	if len(got) != len(want) {
		t.Fatalf("RangeDays returned %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RangeDays[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTimestampOrdering(t *testing.T) {
	// Timestamps are fixed-width, so string comparison must match
	// chronological order.
	a := Timestamp()
	b := Timestamp()
	if len(a) != len(b) {
		t.Errorf("timestamps differ in width: %q vs %q", a, b)
	}
	if b < a {
		t.Errorf("later timestamp sorts before earlier: %q < %q", b, a)
	}
}
