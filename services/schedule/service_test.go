package schedule

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"

	"shoptv/models"
)

const dataRoot = "/data"

func newTestStore(t *testing.T, files map[string]string) *Service {
	t.Helper()

	fs := afero.NewMemMapFs()
	if files != nil {
		if err := fs.MkdirAll(dataRoot, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for name, body := range files {
		if err := afero.WriteFile(fs, dataRoot+"/"+name, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return NewService(fs, dataRoot)
}

func scheduleJSON(date string, itemCount int) string {
	items := ""
	for i := 0; i < itemCount; i++ {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(`{
			"channel_code": "gsshop",
			"channel": "GS샵",
			"start_time": "%s 09:40",
			"end_time": "%s 10:40",
			"product_name": "상품 %d",
			"price": 19900,
			"original_price": "",
			"brand": "",
			"category": "",
			"image_url": "",
			"product_url": "",
			"review_count": 0,
			"review_rating": 0
		}`, date, date, i)
	}
	return fmt.Sprintf(`{"date": %q, "collected_at": "%sT06:00:00", "total_count": %d, "items": [%s]}`,
		date, date, itemCount, items)
}

func TestAvailableDatesMissingRoot(t *testing.T) {
	store := newTestStore(t, nil)

	dates, err := store.AvailableDates()
	if err != nil {
		t.Fatalf("missing data root must not be an error, got %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(dates))
	}
}

func TestAvailableDatesNewestFirst(t *testing.T) {
	store := newTestStore(t, map[string]string{
		"schedule_20260223.json": scheduleJSON("2026-02-23", 2),
		"schedule_20260225.json": scheduleJSON("2026-02-25", 3),
		"schedule_20260224.json": scheduleJSON("2026-02-24", 1),
		"notes.txt":              "ignored",
		"schedule_latest.json":   "not a dated file",
	})

	dates, err := store.AvailableDates()
	if err != nil {
		t.Fatal(err)
	}

	want := []models.DateInfo{
		{Date: "2026-02-25", Display: "2026년 2월 25일", ItemCount: 3},
		{Date: "2026-02-24", Display: "2026년 2월 24일", ItemCount: 1},
		{Date: "2026-02-23", Display: "2026년 2월 23일", ItemCount: 2},
	}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %+v, want %+v", i, dates[i], want[i])
		}
	}
}

func TestAvailableDatesCorruptFileCountsZero(t *testing.T) {
	store := newTestStore(t, map[string]string{
		"schedule_20260225.json": scheduleJSON("2026-02-25", 2),
		"schedule_20260224.json": "{broken",
	})

	dates, err := store.AvailableDates()
	if err != nil {
		t.Fatalf("a corrupt file must not abort the listing, got %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(dates))
	}
	if dates[1].Date != "2026-02-24" || dates[1].ItemCount != 0 {
		t.Errorf("corrupt file entry = %+v, want itemCount 0", dates[1])
	}
}

func TestLoadValidatesDateBeforeIO(t *testing.T) {
	store := newTestStore(t, nil)

	for _, key := range []string{"20260225", "2026/02/25", "2026-2-25", "2024-13-40", "schedule"} {
		if _, err := store.Load(key); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Load(%q) = %v, want ErrInvalidDate", key, err)
		}
	}
}

func TestLoadNotFound(t *testing.T) {
	store := newTestStore(t, map[string]string{
		"schedule_20260225.json": scheduleJSON("2026-02-25", 1),
	})

	if _, err := store.Load("2026-02-24"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load for an absent day = %v, want ErrNotFound", err)
	}
}

func TestLoadDecodeFailureIsNotNotFound(t *testing.T) {
	store := newTestStore(t, map[string]string{
		"schedule_20260225.json": "{broken",
	})

	_, err := store.Load("2026-02-25")
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidDate) {
		t.Errorf("decode failure must stay distinct from not-found, got %v", err)
	}
}

func TestLoadReturnsItems(t *testing.T) {
	store := newTestStore(t, map[string]string{
		"schedule_20260225.json": scheduleJSON("2026-02-25", 2),
	})

	data, err := store.Load("2026-02-25")
	if err != nil {
		t.Fatal(err)
	}
	if data.Date != "2026-02-25" || data.TotalCount != 2 || len(data.Items) != 2 {
		t.Errorf("unexpected schedule: date=%s total=%d items=%d",
			data.Date, data.TotalCount, len(data.Items))
	}
	if data.Items[0].Price != models.KnownPrice(19900) {
		t.Errorf("price = %+v", data.Items[0].Price)
	}
	if data.Items[0].OriginalPrice.Known {
		t.Errorf("original price should be unknown, got %+v", data.Items[0].OriginalPrice)
	}
}

func TestLoadFillsMissingChannelNames(t *testing.T) {
	body := `{"date": "2026-02-25", "collected_at": "", "total_count": 1, "items": [
		{"channel_code": "hmall", "channel": "", "start_time": "2026-02-25 10:00",
		 "end_time": "2026-02-25 11:00", "product_name": "이불 세트", "price": "",
		 "original_price": "", "brand": "", "category": "", "image_url": "",
		 "product_url": "", "review_count": 0, "review_rating": 0}
	]}`
	store := newTestStore(t, map[string]string{"schedule_20260225.json": body})

	data, err := store.Load("2026-02-25")
	if err != nil {
		t.Fatal(err)
	}
	if data.Items[0].Channel != "현대홈쇼핑" {
		t.Errorf("channel = %q, want resolved name", data.Items[0].Channel)
	}
}
