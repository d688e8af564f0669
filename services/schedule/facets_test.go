package schedule

import (
	"testing"

	"shoptv/models"
)

// makeItem builds a minimal schedule item for the pure-function tests in
// this package.
func makeItem(channel, code, category, name string) models.ScheduleItem {
	return models.ScheduleItem{
		ChannelCode: code,
		Channel:     channel,
		Category:    category,
		ProductName: name,
	}
}

func TestExtractChannelsFirstSeenOrder(t *testing.T) {
	items := []models.ScheduleItem{
		makeItem("GS샵", "gsshop", "", "a"),
		makeItem("CJ온스타일", "cjmall", "", "b"),
		makeItem("GS샵", "gsshop2", "", "c"), // later code for same name is ignored
		makeItem("NS홈쇼핑", "nsmall", "", "d"),
		makeItem("CJ온스타일", "cjmall", "", "e"),
	}

	channels := ExtractChannels(items)

	want := []models.ChannelInfo{
		{Code: "gsshop", Name: "GS샵"},
		{Code: "cjmall", Name: "CJ온스타일"},
		{Code: "nsmall", Name: "NS홈쇼핑"},
	}
	if len(channels) != len(want) {
		t.Fatalf("expected %d channels, got %d", len(want), len(channels))
	}
	for i := range want {
		if channels[i] != want[i] {
			t.Errorf("channels[%d] = %+v, want %+v", i, channels[i], want[i])
		}
	}
}

func TestExtractChannelsEmpty(t *testing.T) {
	if got := ExtractChannels(nil); len(got) != 0 {
		t.Errorf("expected no channels, got %v", got)
	}
}

func TestExtractCategoriesCountsAndOrder(t *testing.T) {
	items := []models.ScheduleItem{
		makeItem("A", "a", "패션", "1"),
		makeItem("A", "a", "식품", "2"),
		makeItem("A", "a", "", "3"), // uncategorized items are not counted
		makeItem("A", "a", "식품", "4"),
		makeItem("A", "a", "가전", "5"),
		makeItem("A", "a", "패션", "6"),
		makeItem("A", "a", "식품", "7"),
	}

	categories := ExtractCategories(items)

	want := []models.CategoryInfo{
		{Name: "식품", Count: 3},
		{Name: "패션", Count: 2},
		{Name: "가전", Count: 1},
	}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(categories))
	}
	total := 0
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("categories[%d] = %+v, want %+v", i, categories[i], want[i])
		}
		total += categories[i].Count
	}
	if total != 6 {
		t.Errorf("counts sum to %d, want the number of categorized items (6)", total)
	}
}

func TestExtractCategoriesTieBreakByName(t *testing.T) {
	items := []models.ScheduleItem{
		makeItem("A", "a", "뷰티", "1"),
		makeItem("A", "a", "가전", "2"),
	}

	categories := ExtractCategories(items)
	if categories[0].Name != "가전" || categories[1].Name != "뷰티" {
		t.Errorf("equal counts must order by name, got %v", categories)
	}
}

func TestCategoryValuesIncludesEmpty(t *testing.T) {
	items := []models.ScheduleItem{
		makeItem("A", "a", "식품", "1"),
		makeItem("A", "a", "", "2"),
		makeItem("A", "a", "식품", "3"),
		makeItem("A", "a", "패션", "4"),
	}

	values := CategoryValues(items)

	want := []string{"식품", "", "패션"}
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(values))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %q, want %q", i, values[i], want[i])
		}
	}
}
