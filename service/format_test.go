package service

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{125, "2 ч 5 мин"},
		{59, "0 ч 59 мин"},
		{60, "1 ч 0 мин"},
		{0, "0 ч 0 мин"},
		{275, "4 ч 35 мин"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestSplitDateTime(t *testing.T) {
	// 2023-08-18 is a Friday.
	parts, err := SplitDateTime("2023-08-18T11:05:00")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if parts.Time != "11:05" {
		t.Fatalf("expected time %q, got %q", "11:05", parts.Time)
	}
	if parts.Date != "18 авг.пт" {
		t.Fatalf("expected date %q, got %q", "18 авг.пт", parts.Date)
	}
}

func TestSplitDateTime_PadsHoursAndMinutes(t *testing.T) {
	parts, err := SplitDateTime("2023-01-02T07:09:00")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if parts.Time != "07:09" {
		t.Fatalf("expected zero-padded time, got %q", parts.Time)
	}
	// 2023-01-02 is a Monday.
	if parts.Date != "2 янв.пн" {
		t.Fatalf("expected date %q, got %q", "2 янв.пн", parts.Date)
	}
}

func TestSplitDateTime_Invalid(t *testing.T) {
	if _, err := SplitDateTime("not-a-timestamp"); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"21049.00", "21 049 ₽"},
		{"950.00", "950 ₽"},
		{"1000000", "1 000 000 ₽"},
		{"oops", "oops ₽"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.amount); got != tc.want {
			t.Fatalf("FormatPrice(%q) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
