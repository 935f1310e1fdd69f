package usecase

import (
	"testing"
	"time"
)

func TestFrenchLongDate(t *testing.T) {
	d := time.Date(2026, time.September, 2, 10, 0, 0, 0, time.UTC)
	if got := frenchLongDate(d); got != "2 septembre 2026" {
		t.Errorf("frenchLongDate = %q", got)
	}
	d = time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	if got := frenchLongDate(d); got != "15 août 2025" {
		t.Errorf("frenchLongDate = %q", got)
	}
}

func TestFrenchShortDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2025-03-12", "12/03/2025"},
		{" 2025-03-12 ", "12/03/2025"},
		{"12/03/2025", "12/03/2025"},
		{"mars 2025", "mars 2025"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := frenchShortDate(tc.in); got != tc.want {
			t.Errorf("frenchShortDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFmtEUR(t *testing.T) {
	cases := []struct {
		n    float64
		ok   bool
		want string
	}{
		{650, true, "650 €"},
		{650.5, true, "650,50 €"},
		{1240, true, "1 240 €"},
		{1240.5, true, "1 240,50 €"},
		{1234567, true, "1 234 567 €"},
		{0.999, true, "1 €"},
		{649.999, true, "650 €"},
		{999.995, true, "1 000 €"},
		{1240.995, true, "1 241 €"},
		{649.994, true, "649,99 €"},
		{0, true, ""},
		{-10, true, ""},
		{650, false, ""},
	}
	for _, tc := range cases {
		if got := fmtEUR(tc.n, tc.ok); got != tc.want {
			t.Errorf("fmtEUR(%v, %v) = %q, want %q", tc.n, tc.ok, got, tc.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct{ in, want string }{
		{"5", "5"},
		{"650", "650"},
		{"1240", "1 240"},
		{"1234567", "1 234 567"},
	}
	for _, tc := range cases {
		if got := groupThousands(tc.in); got != tc.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
