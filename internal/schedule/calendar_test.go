package schedule

import "testing"

func TestAddDays(t *testing.T) {
	cases := []struct {
		name string
		day  string
		n    int
		want string
	}{
		{name: "forward", day: "2026-03-01", n: 7, want: "2026-03-08"},
		{name: "backward", day: "2026-03-01", n: -1, want: "2026-02-28"},
		{name: "zero", day: "2026-03-01", n: 0, want: "2026-03-01"},
		{name: "month_rollover", day: "2026-01-31", n: 1, want: "2026-02-01"},
		{name: "leap_day", day: "2028-02-28", n: 1, want: "2028-02-29"},
		{name: "invalid_passthrough", day: "not-a-date", n: 5, want: "not-a-date"},
		{name: "empty_passthrough", day: "", n: 3, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddDays(tc.day, tc.n); got != tc.want {
				t.Fatalf("AddDays(%q, %d) = %q, want %q", tc.day, tc.n, got, tc.want)
			}
		})
	}
}

func TestValidDay(t *testing.T) {
	if !ValidDay("2026-09-01") {
		t.Fatalf("expected 2026-09-01 to be valid")
	}
	if ValidDay("09/01/2026") {
		t.Fatalf("expected slash format to be invalid")
	}
	if ValidDay("") {
		t.Fatalf("expected empty string to be invalid")
	}
}
