package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"shoptv/models"
	"shoptv/utils"
)

var (
	ErrInvalidDate = errors.New("invalid date format")
	ErrNotFound    = errors.New("schedule not found")
)

var (
	dateKeyPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	fileNamePattern = regexp.MustCompile(`^schedule_(\d{8})\.json$`)
)

// Service reads the daily schedule snapshots written by the upstream
// collector. Every call re-reads the filesystem, so new files appear without
// a restart and there is no cache to invalidate.
type Service struct {
	fs   afero.Fs
	root string
}

// NewService creates a schedule store reading from the given directory.
func NewService(fs afero.Fs, root string) *Service {
	return &Service{fs: fs, root: root}
}

// AvailableDates lists the persisted days, newest first. A missing data root
// is an empty store, not an error. A file that fails to decode still appears
// in the listing with an item count of zero.
func (s *Service) AvailableDates() ([]models.DateInfo, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.DateInfo{}, nil
		}
		return nil, fmt.Errorf("read schedule dir: %w", err)
	}

	dates := make([]models.DateInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := fileNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		compact := m[1]
		dateKey := compact[:4] + "-" + compact[4:6] + "-" + compact[6:8]

		dates = append(dates, models.DateInfo{
			Date:      dateKey,
			Display:   utils.FormatDisplayDate(dateKey),
			ItemCount: s.itemCount(entry.Name()),
		})
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Date > dates[j].Date
	})

	return dates, nil
}

// Load returns one day's schedule. The date key is validated before any file
// access; a missing file is ErrNotFound, while a present-but-unparsable file
// is a decode error the caller must surface as a server fault.
func (s *Service) Load(dateKey string) (*models.ScheduleData, error) {
	if !dateKeyPattern.MatchString(dateKey) {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return nil, ErrInvalidDate
	}

	name := "schedule_" + strings.ReplaceAll(dateKey, "-", "") + ".json"
	raw, err := afero.ReadFile(s.fs, filepath.Join(s.root, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read schedule %s: %w", dateKey, err)
	}

	var data models.ScheduleData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode schedule %s: %w", dateKey, err)
	}

	// The collector resolves channel names itself; fill in any it missed.
	for i := range data.Items {
		if data.Items[i].Channel == "" && data.Items[i].ChannelCode != "" {
			data.Items[i].Channel = models.ResolveChannelName(data.Items[i].ChannelCode)
		}
	}

	return &data, nil
}

// itemCount reads a file's declared total_count for the date listing.
// Decode failures are swallowed here; the listing must not abort on one
// broken file.
func (s *Service) itemCount(name string) int {
	raw, err := afero.ReadFile(s.fs, filepath.Join(s.root, name))
	if err != nil {
		return 0
	}
	var data models.ScheduleData
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0
	}
	return data.TotalCount
}
