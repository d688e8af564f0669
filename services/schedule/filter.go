package schedule

import (
	"strings"

	"shoptv/models"
)

// Filter selects schedule items by channel membership, category membership,
// and a free-text query. All clauses are AND-ed. A nil channel or category
// selection means that clause is not applied at all; an empty (non-nil)
// selection matches nothing, mirroring the dashboard's deselect-all state.
type Filter struct {
	channels   map[string]bool
	categories map[string]bool
	query      string

	// coversKnown is true when every known category of the day is selected.
	// Uncategorized items are included only then: any narrowing of the
	// category selection deliberately hides them.
	coversKnown bool
}

// NewFilter builds a filter. The known category vocabulary must come from
// the full day's items, not from an already-filtered view, so the
// uncategorized policy is judged against what the day actually contains.
func NewFilter(channels, categories []string, query string, known []models.CategoryInfo) *Filter {
	f := &Filter{
		query:       strings.ToLower(strings.TrimSpace(query)),
		coversKnown: true,
	}

	if channels != nil {
		f.channels = make(map[string]bool, len(channels))
		for _, name := range channels {
			f.channels[name] = true
		}
	}

	if categories != nil {
		f.categories = make(map[string]bool, len(categories))
		for _, name := range categories {
			f.categories[name] = true
		}
		for _, cat := range known {
			if !f.categories[cat.Name] {
				f.coversKnown = false
				break
			}
		}
	}

	return f
}

// Match reports whether a single item passes every clause.
func (f *Filter) Match(item models.ScheduleItem) bool {
	if f.channels != nil && !f.channels[item.Channel] {
		return false
	}

	if f.categories != nil {
		if item.Category != "" {
			if !f.categories[item.Category] {
				return false
			}
		} else if !f.coversKnown {
			return false
		}
	}

	if f.query != "" {
		name := strings.Contains(strings.ToLower(item.ProductName), f.query)
		brand := strings.Contains(strings.ToLower(item.Brand), f.query)
		if !name && !brand {
			return false
		}
	}

	return true
}

// Apply returns a fresh slice of the items passing the filter, input order
// preserved.
func (f *Filter) Apply(items []models.ScheduleItem) []models.ScheduleItem {
	result := make([]models.ScheduleItem, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			result = append(result, item)
		}
	}
	return result
}
