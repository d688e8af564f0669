package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"shoptv/models"
	"shoptv/services/schedule"
	"shoptv/utils"
)

// ScheduleHandler serves the schedule API: the date listing, single-day
// schedules with optional server-side filtering and sorting, the
// time-grouped view, and the CSV export.
type ScheduleHandler struct {
	Store *schedule.Service
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(store *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{Store: store}
}

// GetDates returns the available days, newest first.
func (h *ScheduleHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.Store.AvailableDates()
	if err != nil {
		log.Printf("list schedule dates: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load available dates")
		return
	}

	writeJSON(w, http.StatusOK, models.DatesResponse{Dates: dates})
}

// GetSchedule returns one day's schedule. Optional query parameters narrow
// the items: repeatable "channel" and "category", free-text "q", and "sort"
// with one of the product sort keys. The channels/categories vocabularies in
// the response always describe the full day, not the filtered view.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	items := applyFilters(r, data)

	if sortKey := r.URL.Query().Get("sort"); sortKey != "" {
		opt, valid := schedule.ParseSortOption(sortKey)
		if !valid {
			writeError(w, http.StatusBadRequest, "invalid sort option: "+sortKey)
			return
		}
		items = schedule.SortItems(items, opt)
	}

	if items == nil {
		items = []models.ScheduleItem{}
	}

	channels := make([]string, 0)
	for _, ch := range schedule.ExtractChannels(data.Items) {
		channels = append(channels, ch.Name)
	}

	writeJSON(w, http.StatusOK, models.ScheduleResponse{
		Date:       data.Date,
		Channels:   channels,
		Categories: schedule.CategoryValues(data.Items),
		Items:      items,
	})
}

// GetTimeGroups returns the day's items bucketed by start hour, the grouped
// display mode of the dashboard. The same filter parameters apply; items are
// always time-sorted before grouping.
func (h *ScheduleHandler) GetTimeGroups(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	items := schedule.SortItems(applyFilters(r, data), schedule.SortTime)

	writeJSON(w, http.StatusOK, models.TimeGroupsResponse{
		Date:   data.Date,
		Groups: schedule.BuildTimeGroups(items),
	})
}

// csvHeader matches the column set of the collector's spreadsheet export.
var csvHeader = []string{
	"채널명", "방송 시작", "방송 종료", "상품명", "판매가", "정가",
	"브랜드", "카테고리", "이미지 URL", "상품 URL", "리뷰 수", "평점",
}

// ExportCSV streams the day's (optionally filtered) schedule as a CSV file,
// ordered by channel then start time as the collector's own export is.
func (h *ScheduleHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	items := applyFilters(r, data)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Channel != items[j].Channel {
			return items[i].Channel < items[j].Channel
		}
		return items[i].StartTime < items[j].StartTime
	})

	filename := "schedule_" + strings.ReplaceAll(data.Date, "-", "") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	// UTF-8 BOM so spreadsheet apps pick up the Korean headers.
	w.Write([]byte{0xEF, 0xBB, 0xBF})

	cw := csv.NewWriter(w)
	cw.Write(csvHeader)
	for _, item := range items {
		cw.Write([]string{
			item.Channel,
			item.StartTime,
			item.EndTime,
			item.ProductName,
			utils.FormatPrice(item.Price),
			utils.FormatPrice(item.OriginalPrice),
			item.Brand,
			item.Category,
			item.ImageURL,
			item.ProductURL,
			strconv.Itoa(item.ReviewCount),
			strconv.FormatFloat(item.ReviewRating, 'f', -1, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("write schedule csv %s: %v", data.Date, err)
	}
}

// Options handles CORS preflight.
func (h *ScheduleHandler) Options(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loadDay loads the schedule named in the URL, writing the error response
// itself when the date is invalid, unknown, or unreadable.
func (h *ScheduleHandler) loadDay(w http.ResponseWriter, r *http.Request) (*models.ScheduleData, bool) {
	date := strings.TrimSpace(mux.Vars(r)["date"])

	data, err := h.Store.Load(date)
	switch {
	case errors.Is(err, schedule.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
		return nil, false
	case errors.Is(err, schedule.ErrNotFound):
		writeError(w, http.StatusNotFound, "Schedule not found for this date")
		return nil, false
	case err != nil:
		log.Printf("load schedule %s: %v", date, err)
		writeError(w, http.StatusInternalServerError, "Failed to load schedule")
		return nil, false
	}

	return data, true
}

// applyFilters narrows a day's items by the optional channel/category/q
// parameters. Absent parameters leave the items untouched, so the plain
// single-day response returns stored order unchanged.
func applyFilters(r *http.Request, data *models.ScheduleData) []models.ScheduleItem {
	query := r.URL.Query()
	channels, channelFilter := query["channel"]
	categories, categoryFilter := query["category"]
	search := query.Get("q")

	if !channelFilter && !categoryFilter && strings.TrimSpace(search) == "" {
		return data.Items
	}

	known := schedule.ExtractCategories(data.Items)
	if !channelFilter {
		channels = nil
	}
	if !categoryFilter {
		categories = nil
	}

	return schedule.NewFilter(channels, categories, search, known).Apply(data.Items)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
