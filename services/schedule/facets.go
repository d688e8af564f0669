package schedule

import (
	"sort"

	"shoptv/models"
)

// ExtractChannels returns the distinct channels in a day's items, first-seen
// order preserved, each name paired with the code of its first occurrence.
func ExtractChannels(items []models.ScheduleItem) []models.ChannelInfo {
	seen := make(map[string]bool, len(items))
	channels := make([]models.ChannelInfo, 0)

	for _, item := range items {
		if seen[item.Channel] {
			continue
		}
		seen[item.Channel] = true
		channels = append(channels, models.ChannelInfo{
			Code: item.ChannelCode,
			Name: item.Channel,
		})
	}

	return channels
}

// ExtractCategories counts items per non-empty category, most frequent
// first. Count ties break by category name so the order is deterministic.
func ExtractCategories(items []models.ScheduleItem) []models.CategoryInfo {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, item := range items {
		if item.Category == "" {
			continue
		}
		if counts[item.Category] == 0 {
			order = append(order, item.Category)
		}
		counts[item.Category]++
	}

	categories := make([]models.CategoryInfo, 0, len(order))
	for _, name := range order {
		categories = append(categories, models.CategoryInfo{Name: name, Count: counts[name]})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})

	return categories
}

// CategoryValues returns the distinct raw category values present in the
// items, first-seen order, including the empty value when uncategorized
// items exist. This is the set the single-day API response exposes.
func CategoryValues(items []models.ScheduleItem) []string {
	seen := make(map[string]bool, len(items))
	values := make([]string, 0)

	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		values = append(values, item.Category)
	}

	return values
}
