package timecost

import "testing"

func TestFromHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  Duration
		text  string
	}{
		{"zero", 0, Duration{}, "0 hours"},
		{"one hour", 1, Duration{Hours: 1}, "1 hour"},
		{"half hour", 0.5, Duration{Minutes: 30}, "0 hours, 30 minutes"},
		{"one minute", 1.0 / 60, Duration{Minutes: 1}, "0 hours, 1 minute"},
		{"exactly a day", 24, Duration{Days: 1}, "1 day, 0 hours"},
		{"day hour minute", 25 + 1.0/60, Duration{Days: 1, Hours: 1, Minutes: 1}, "1 day, 1 hour, 1 minute"},
		{"several days", 73.25, Duration{Days: 3, Hours: 1, Minutes: 15}, "3 days, 1 hour, 15 minutes"},
		{"minute carries into hour", 0.9999, Duration{Hours: 1}, "1 hour"},
		{"minute carries into day", 23.9999, Duration{Days: 1}, "1 day, 0 hours"},
		{"rounds down below half minute", 2 + 0.4/60, Duration{Hours: 2}, "2 hours"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromHours(tc.hours)
			if got != tc.want {
				t.Fatalf("FromHours(%v): expected %+v, got %+v", tc.hours, tc.want, got)
			}
			if s := got.String(); s != tc.text {
				t.Fatalf("FromHours(%v).String(): expected %q, got %q", tc.hours, tc.text, s)
			}
		})
	}
}

func TestFromHoursNeverShowsSixtyMinutes(t *testing.T) {
	for i := 0; i < 5000; i++ {
		h := float64(i) * 0.01999
		d := FromHours(h)
		if d.Minutes < 0 || d.Minutes > 59 {
			t.Fatalf("FromHours(%v): minutes out of range: %d", h, d.Minutes)
		}
		if d.Hours < 0 || d.Hours > 23 {
			t.Fatalf("FromHours(%v): hours out of range: %d", h, d.Hours)
		}
	}
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{16.666666, 16.7},
		{8, 8},
		{0.04, 0},
		{0.05, 0.1},
		{0.99, 1},
		{123.449, 123.4},
	}

	for _, tc := range tests {
		if got := RoundTenth(tc.in); got != tc.want {
			t.Errorf("RoundTenth(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestWorkdays(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{8, 1},
		{10, 1.25},
		{16.666666, 2.08},
		{0, 0},
		{50, 6.25},
	}

	for _, tc := range tests {
		if got := Workdays(tc.in); got != tc.want {
			t.Errorf("Workdays(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
