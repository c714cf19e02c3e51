package cli

import "testing"

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "mon", want: []int{0}},
		{in: "mon,wed,fri", want: []int{0, 2, 4}},
		{in: "Sunday", want: []int{6}},
		{in: "0,6", want: []int{0, 6}},
		{in: " tue , thu ", want: []int{1, 3}},
		{in: "7", wantErr: true},
		{in: "funday", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseWeekdays(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekdays(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekdays(%q) error: %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("ParseWeekdays(%q)[%d] = %d, want %d", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFormatWeekdays(t *testing.T) {
	if got := FormatWeekdays(nil); got != "every day" {
		t.Errorf("FormatWeekdays(nil) = %q", got)
	}
	if got := FormatWeekdays([]int{0, 2, 4}); got != "Mon,Wed,Fri" {
		t.Errorf("FormatWeekdays = %q", got)
	}
}

func TestResolveDate(t *testing.T) {
	if _, err := ResolveDate("2024-06-10"); err != nil {
		t.Errorf("explicit date rejected: %v", err)
	}
	if _, err := ResolveDate("today"); err != nil {
		t.Errorf("'today' rejected: %v", err)
	}
	if _, err := ResolveDate("June 10"); err == nil {
		t.Error("malformed date accepted")
	}

	today, _ := ResolveDate("today")
	yesterday, _ := ResolveDate("yesterday")
	tomorrow, _ := ResolveDate("tomorrow")
	if !(yesterday < today && today < tomorrow) {
		t.Errorf("date shorthands out of order: %s / %s / %s", yesterday, today, tomorrow)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"0d1f3c2a-9b8e-4f5d-a6c7-112233445566", "0d1f3c2a"},
		{"abcdefgh", "abcdefgh"},
		{"t1", "t1"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := ShortID(tc.id); got != tc.want {
			t.Errorf("ShortID(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
