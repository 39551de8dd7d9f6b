package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Display tables are fixed to the locale of the bundled dataset.
var (
	monthAbbrevs = [12]string{"янв.", "фев.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сен.", "окт.", "ноя.", "дек."}

	// Sunday-first, matching time.Weekday indexing.
	weekdayAbbrevs = [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"}
)

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// DateTimeParts is a timestamp split into its two display labels:
// "18 авг.пт" and "11:35".
type DateTimeParts struct {
	Date string
	Time string
}

// SplitDateTime renders a segment timestamp into date and time labels.
// The value is interpreted as wall-clock local time. The date label is
// the day of month, the month abbreviation, then the weekday abbreviation
// with no separator, exactly as the upstream page renders it.
func SplitDateTime(value string) (DateTimeParts, error) {
	var parsed time.Time
	var err error
	for _, layout := range dateTimeLayouts {
		parsed, err = time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			break
		}
	}
	if err != nil {
		return DateTimeParts{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}

	return DateTimeParts{
		Date: fmt.Sprintf("%d %s%s", parsed.Day(), monthAbbrevs[parsed.Month()-1], weekdayAbbrevs[parsed.Weekday()]),
		Time: fmt.Sprintf("%02d:%02d", parsed.Hour(), parsed.Minute()),
	}, nil
}

// FormatDuration renders total minutes as "<h> ч <m> мин" with floor
// division.
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%d ч %d мин", totalMinutes/60, totalMinutes%60)
}

// FormatPrice renders a decimal amount string as grouped whole rubles,
// "21 049 ₽". Amounts that do not parse are rendered verbatim.
func FormatPrice(amount string) string {
	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return amount + " ₽"
	}
	return humanize.FormatFloat("# ###.", parsed) + " ₽"
}
