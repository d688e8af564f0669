package schedule

import (
	"sort"

	"shoptv/models"
)

// SortOption is a sort key for the product list.
type SortOption string

const (
	SortTime      SortOption = "time"       // ascending start time
	SortPriceAsc  SortOption = "price-asc"  // cheapest first; unknown prices count as 0
	SortPriceDesc SortOption = "price-desc" // most expensive first
	SortDiscount  SortOption = "discount"   // highest discount rate first
	SortReview    SortOption = "review"     // most reviews first
	SortRating    SortOption = "rating"     // highest rating first
)

// ParseSortOption validates a sort key from user input.
func ParseSortOption(s string) (SortOption, bool) {
	switch opt := SortOption(s); opt {
	case SortTime, SortPriceAsc, SortPriceDesc, SortDiscount, SortReview, SortRating:
		return opt, true
	}
	return "", false
}

// SortItems returns a sorted copy of the items. The sort is stable: items
// with equal keys keep their input order, which matters for the grouped view
// where buckets inherit this ordering.
func SortItems(items []models.ScheduleItem, opt SortOption) []models.ScheduleItem {
	sorted := make([]models.ScheduleItem, len(items))
	copy(sorted, items)

	var less func(a, b models.ScheduleItem) bool
	switch opt {
	case SortTime:
		// Zero-padded "YYYY-MM-DD HH:MM" timestamps compare chronologically.
		less = func(a, b models.ScheduleItem) bool { return a.StartTime < b.StartTime }
	case SortPriceAsc:
		less = func(a, b models.ScheduleItem) bool { return a.Price.SortValue() < b.Price.SortValue() }
	case SortPriceDesc:
		less = func(a, b models.ScheduleItem) bool { return a.Price.SortValue() > b.Price.SortValue() }
	case SortDiscount:
		less = func(a, b models.ScheduleItem) bool { return discountSortValue(a) > discountSortValue(b) }
	case SortReview:
		less = func(a, b models.ScheduleItem) bool { return a.ReviewCount > b.ReviewCount }
	case SortRating:
		less = func(a, b models.ScheduleItem) bool { return a.ReviewRating > b.ReviewRating }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// discountSortValue is the ordering coercion for the discount key: items
// without a valid discount rank last with rate 0.
func discountSortValue(item models.ScheduleItem) int {
	rate, ok := models.DiscountRate(item.OriginalPrice, item.Price)
	if !ok {
		return 0
	}
	return rate
}
