package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// ScheduleItem is one product's broadcast slot on one channel, as collected
// upstream. Timestamps are "YYYY-MM-DD HH:MM" strings in KST; zero-padding
// makes lexical order match chronological order.
type ScheduleItem struct {
	ChannelCode   string  `json:"channel_code"`
	Channel       string  `json:"channel"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	ProductName   string  `json:"product_name"`
	Price         Price   `json:"price"`
	OriginalPrice Price   `json:"original_price"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"image_url"`
	ProductURL    string  `json:"product_url"`
	ReviewCount   int     `json:"review_count"`
	ReviewRating  float64 `json:"review_rating"`
}

// ScheduleData is one day's collected snapshot. Items are in scrape order and
// never mutated after load; filtered and sorted views are fresh copies.
type ScheduleData struct {
	Date        string         `json:"date"`
	CollectedAt string         `json:"collected_at"`
	TotalCount  int            `json:"total_count"`
	Items       []ScheduleItem `json:"items"`
}

// DateInfo describes one available day in the store.
type DateInfo struct {
	Date      string `json:"date"`
	Display   string `json:"display"`
	ItemCount int    `json:"itemCount"`
}

// ChannelInfo pairs a channel's display name with its code.
type ChannelInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CategoryInfo is a category facet entry with its item count for the day.
type CategoryInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimeGroup is a bucket of items sharing the same start hour.
type TimeGroup struct {
	Hour  int            `json:"hour"`
	Label string         `json:"label"`
	Items []ScheduleItem `json:"items"`
}

// DatesResponse is the API response for the date listing endpoint.
type DatesResponse struct {
	Dates []DateInfo `json:"dates"`
}

// ScheduleResponse is the API response for a single day's schedule.
// Channels and categories are the distinct values present in the full day's
// data, independent of any filter parameters.
type ScheduleResponse struct {
	Date       string         `json:"date"`
	Channels   []string       `json:"channels"`
	Categories []string       `json:"categories"`
	Items      []ScheduleItem `json:"items"`
}

// TimeGroupsResponse is the API response for the grouped display mode.
type TimeGroupsResponse struct {
	Date   string      `json:"date"`
	Groups []TimeGroup `json:"groups"`
}

// Price is a sale price as delivered by the collector: a JSON number, a
// numeric string, or an empty/unparsable string meaning the price is unknown.
// Unknown prices display as "price unknown" but sort as zero.
type Price struct {
	Amount int
	Known  bool
}

// KnownPrice builds a known price value.
func KnownPrice(amount int) Price {
	return Price{Amount: amount, Known: true}
}

// UnmarshalJSON accepts a number, a string, or null. String values are parsed
// the way the dashboard always has: leading integer digits, anything else is
// the unknown state. This must never fail on collector data.
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*p = Price{Amount: int(v), Known: true}
	case string:
		*p = parsePriceString(v)
	default:
		*p = Price{}
	}
	return nil
}

// MarshalJSON writes a known price as a number and an unknown one as "",
// matching the collector's own convention for missing prices.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Known {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(p.Amount)), nil
}

// SortValue is the numeric coercion used by ordering: unknown prices count
// as zero so they sort as cheapest, even though they never display as 0.
func (p Price) SortValue() int {
	if !p.Known {
		return 0
	}
	return p.Amount
}

// parsePriceString consumes leading integer digits after optional whitespace
// and sign. "12,900원" parses as 12; "" and "abc" are unknown.
func parsePriceString(s string) Price {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return Price{}
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return Price{}
	}
	return Price{Amount: sign * n, Known: true}
}

// DiscountRate returns the percentage drop from the original price to the
// current one. It is defined only when both prices are known and positive and
// the original exceeds the current; otherwise ok is false and callers render
// the discount as absent (and treat it as 0 for sorting).
func DiscountRate(original, current Price) (int, bool) {
	if !original.Known || !current.Known {
		return 0, false
	}
	o, c := original.Amount, current.Amount
	if o <= 0 || c <= 0 || o <= c {
		return 0, false
	}
	return int(math.Round(100 * float64(o-c) / float64(o))), true
}
