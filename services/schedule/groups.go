package schedule

import (
	"sort"

	"shoptv/models"
	"shoptv/utils"
)

// BuildTimeGroups partitions items into hour buckets for the grouped display
// mode. Buckets are ordered ascending by hour; within a bucket item order is
// inherited from the input, which the caller is expected to have sorted
// already. Grouping never re-sorts.
func BuildTimeGroups(items []models.ScheduleItem) []models.TimeGroup {
	buckets := make(map[int][]models.ScheduleItem)
	hours := make([]int, 0)

	for _, item := range items {
		hour := utils.HourFromTime(item.StartTime)
		if _, ok := buckets[hour]; !ok {
			hours = append(hours, hour)
		}
		buckets[hour] = append(buckets[hour], item)
	}

	sort.Ints(hours)

	groups := make([]models.TimeGroup, 0, len(hours))
	for _, hour := range hours {
		groups = append(groups, models.TimeGroup{
			Hour:  hour,
			Label: utils.HourLabel(hour),
			Items: buckets[hour],
		})
	}

	return groups
}
