package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shoptv/models"
)

// korean renders numbers with ko-KR digit grouping.
var korean = message.NewPrinter(language.Korean)

// hourLabels names the hours that have a conventional Korean name; every
// other hour falls back to "<hour>시".
var hourLabels = map[int]string{
	0:  "자정",
	12: "정오",
}

// FormatPrice renders a known price as "12,900원" and an unknown one as
// "가격 미정". Unknown prices must never render as 0.
func FormatPrice(p models.Price) string {
	if !p.Known {
		return "가격 미정"
	}
	return korean.Sprintf("%d원", p.Amount)
}

// FormatTime extracts the "HH:MM" part of a "YYYY-MM-DD HH:MM" timestamp.
// Returns "" when the time component is missing.
func FormatTime(dateTime string) string {
	parts := strings.SplitN(dateTime, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// FormatTimeRange renders a broadcast slot as "15:40 ~ 16:40".
func FormatTimeRange(start, end string) string {
	return FormatTime(start) + " ~ " + FormatTime(end)
}

// HourFromTime parses the integer hour out of a "YYYY-MM-DD HH:MM" timestamp.
// A missing or malformed time component yields hour 0 rather than an error.
func HourFromTime(dateTime string) int {
	timePart := FormatTime(dateTime)
	if timePart == "" {
		return 0
	}
	hourPart, _, _ := strings.Cut(timePart, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 {
		return 0
	}
	return hour
}

// HourLabel returns the display label for an hour bucket.
func HourLabel(hour int) string {
	if label, ok := hourLabels[hour]; ok {
		return label
	}
	return fmt.Sprintf("%d시", hour)
}

// FormatDisplayDate renders a "YYYY-MM-DD" date key as "2026년 2월 25일",
// with leading zeros stripped from month and day. Unparsable input is
// returned as-is.
func FormatDisplayDate(dateKey string) string {
	t, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return dateKey
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
