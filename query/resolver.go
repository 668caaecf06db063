package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/alwitt/larder/models"
)

// The widest possible search window. The maximum sentinel carries a nonzero
// time-of-day so the end-of-day adjustment never applies to it.
var (
	minInstant = time.Time{}
	maxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// InvalidRangeError returned when the resolved search window start falls after
// the window end. Carries both resolved instants for diagnostic display.
type InvalidRangeError struct {
	// From resolved window start
	From time.Time
	// To resolved window end
	To time.Time
}

// Error implement error
func (e InvalidRangeError) Error() string {
	return fmt.Sprintf(
		"search window start '%s' is after its end '%s'",
		e.From.Format(time.RFC3339Nano),
		e.To.Format(time.RFC3339Nano),
	)
}

/*
ResolveWindow combine the optional date and time bounds of the search criteria
into one closed time window.

The date and time of each bound arrive separately, and any subset of the four
may be missing. A missing piece is defaulted rather than rejected:

  - The window start is the from-date at midnight, or today at midnight when
    only a from-time was given, or the minimum instant.
  - A from-time contributes its time-of-day on top of the chosen start date.
  - The window end is the to-date at midnight; with no to-date it defaults to
    the start's own date when either from piece was given. A lone to-time
    bounds today on both sides. Otherwise the end is the maximum instant.
  - A to-time contributes its time-of-day on top of the chosen end date; with
    no to-time, an end still sitting exactly at midnight advances to the last
    instant of that day.

	@param criteria models.SearchCriteria - the search parameters
	@param now time.Time - reference instant supplying "today"
	@returns the window start and end, both inclusive
*/
func ResolveWindow(criteria models.SearchCriteria, now time.Time) (time.Time, time.Time, error) {
	var from time.Time
	switch {
	case criteria.FromDate != nil:
		from = dateOnly(*criteria.FromDate)
	case criteria.FromTime != nil:
		from = dateOnly(now)
	default:
		from = minInstant
	}
	if criteria.FromTime != nil {
		from = from.Add(timeOfDay(*criteria.FromTime))
	}

	var to time.Time
	switch {
	case criteria.ToDate != nil:
		to = dateOnly(*criteria.ToDate)
	case criteria.FromDate != nil || criteria.FromTime != nil:
		to = dateOnly(from)
	case criteria.ToTime != nil:
		// A lone end time bounds today on both sides
		from = dateOnly(now)
		to = dateOnly(now)
	default:
		to = maxInstant
	}
	if criteria.ToTime != nil {
		to = to.Add(timeOfDay(*criteria.ToTime))
	} else if timeOfDay(to) == 0 {
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, InvalidRangeError{From: from, To: to}
	}
	return from, to, nil
}

/*
Resolve select the archived documents matching the search criteria.

The criteria's date and time bounds are combined per ResolveWindow. A record
matches when its timestamp lies within the window, both ends inclusive, and
every set criteria field equals the record's field exactly. Unset fields do
not filter. The result is a newly allocated subset ordered newest first; the
input is never modified. An empty result is not an error.

	@param criteria models.SearchCriteria - the search parameters
	@param records []models.ArchiveRecord - snapshot of records to select from
	@param now time.Time - reference instant supplying "today"
	@returns the matching records, timestamp descending
*/
func Resolve(
	criteria models.SearchCriteria, records []models.ArchiveRecord, now time.Time,
) ([]models.ArchiveRecord, error) {
	from, to, err := ResolveWindow(criteria, now)
	if err != nil {
		return nil, err
	}

	matched := make([]models.ArchiveRecord, 0, len(records))
	for _, record := range records {
		if record.Timestamp.Before(from) || record.Timestamp.After(to) {
			continue
		}
		if criteria.Type != nil && record.Type != *criteria.Type {
			continue
		}
		if criteria.Dept != nil && record.Dept != *criteria.Dept {
			continue
		}
		if criteria.Food != nil && record.Food != *criteria.Food {
			continue
		}
		if criteria.Supplier != nil && record.Supplier != *criteria.Supplier {
			continue
		}
		if criteria.UseByDate != nil && record.UseByDate != *criteria.UseByDate {
			continue
		}
		if criteria.SignOff != nil && record.SignOff != *criteria.SignOff {
			continue
		}
		matched = append(matched, record)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	return matched, nil
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
