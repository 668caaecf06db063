package query

import (
	"sort"
	"time"

	"github.com/alwitt/larder/models"
)

/*
BuildHierarchy derive the archive folder entries for one browse request.

The flat record set collapses into a year / month / day / department+type
folder skeleton. A single period value runs only its own grouping step;
PeriodAll runs all four in fixed order (years, months, days, day) against one
shared accumulator. The focus timestamp scopes the month step to its year, the
day-of-month step to its year and month, and the leaf step to its exact date.
Non-empty type and dept filters restrict every step's input.

Finer-grained entries supersede the coarser placeholder emitted just before
them: a January folder replaces its year's entry, a day-1 folder replaces its
month's entry, and the per-department leaves replace the focus day's entry.
Each replacement pops the most recently appended accumulator entry, so the
steps must run in the fixed order above on a fresh accumulator.

	@param records []models.ArchiveRecordSummary - snapshot of record summaries
	@param period models.PeriodENUMType - requested folder granularity
	@param focus time.Time - reference date anchoring the month, day, and leaf steps
	@param typeFilter string - when non-empty, only consider records of this kind
	@param deptFilter string - when non-empty, only consider records of this department
	@returns the folder entries, ascending within each granularity
*/
func BuildHierarchy(
	records []models.ArchiveRecordSummary,
	period models.PeriodENUMType,
	focus time.Time,
	typeFilter string,
	deptFilter string,
) []models.ArchiveFolderEntry {
	matching := make([]models.ArchiveRecordSummary, 0, len(records))
	for _, record := range records {
		if typeFilter != "" && record.Type != typeFilter {
			continue
		}
		if deptFilter != "" && record.Dept != deptFilter {
			continue
		}
		matching = append(matching, record)
	}

	accumulator := []models.ArchiveFolderEntry{}
	if period == models.PeriodYears || period == models.PeriodAll {
		accumulator = appendYearEntries(accumulator, matching)
	}
	if period == models.PeriodMonths || period == models.PeriodAll {
		accumulator = appendMonthEntries(accumulator, matching, focus)
	}
	if period == models.PeriodDays || period == models.PeriodAll {
		accumulator = appendDayEntries(accumulator, matching, focus)
	}
	if period == models.PeriodDay || period == models.PeriodAll {
		accumulator = appendLeafEntries(accumulator, matching, focus)
	}
	return accumulator
}

func appendYearEntries(
	accumulator []models.ArchiveFolderEntry, records []models.ArchiveRecordSummary,
) []models.ArchiveFolderEntry {
	seen := map[int]bool{}
	for _, record := range records {
		seen[record.Timestamp.Year()] = true
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		accumulator = append(accumulator, models.ArchiveFolderEntry{
			Timestamp: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return accumulator
}

func appendMonthEntries(
	accumulator []models.ArchiveFolderEntry,
	records []models.ArchiveRecordSummary,
	focus time.Time,
) []models.ArchiveFolderEntry {
	seen := map[time.Month]bool{}
	for _, record := range records {
		if record.Timestamp.Year() != focus.Year() {
			continue
		}
		seen[record.Timestamp.Month()] = true
	}

	months := make([]int, 0, len(seen))
	for month := range seen {
		months = append(months, int(month))
	}
	sort.Ints(months)

	for _, month := range months {
		// The January folder supersedes the year placeholder appended just before it
		if time.Month(month) == time.January && len(accumulator) > 0 {
			accumulator = accumulator[:len(accumulator)-1]
		}
		accumulator = append(accumulator, models.ArchiveFolderEntry{
			Timestamp: time.Date(focus.Year(), time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return accumulator
}

func appendDayEntries(
	accumulator []models.ArchiveFolderEntry,
	records []models.ArchiveRecordSummary,
	focus time.Time,
) []models.ArchiveFolderEntry {
	seen := map[int]bool{}
	for _, record := range records {
		if record.Timestamp.Year() != focus.Year() || record.Timestamp.Month() != focus.Month() {
			continue
		}
		seen[record.Timestamp.Day()] = true
	}

	days := make([]int, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		// The day-1 folder supersedes the month placeholder appended just before it
		if day == 1 && len(accumulator) > 0 {
			accumulator = accumulator[:len(accumulator)-1]
		}
		accumulator = append(accumulator, models.ArchiveFolderEntry{
			Timestamp: time.Date(focus.Year(), focus.Month(), day, 0, 0, 0, 0, time.UTC),
		})
	}
	return accumulator
}

func appendLeafEntries(
	accumulator []models.ArchiveFolderEntry,
	records []models.ArchiveRecordSummary,
	focus time.Time,
) []models.ArchiveFolderEntry {
	focusYear, focusMonth, focusDay := focus.Date()

	type deptAndType struct {
		dept    string
		docType string
	}
	seen := map[deptAndType]bool{}
	for _, record := range records {
		year, month, day := record.Timestamp.Date()
		if year != focusYear || month != focusMonth || day != focusDay {
			continue
		}
		seen[deptAndType{dept: record.Dept, docType: record.Type}] = true
	}

	pairs := make([]deptAndType, 0, len(seen))
	for pair := range seen {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].dept != pairs[j].dept {
			return pairs[i].dept < pairs[j].dept
		}
		return pairs[i].docType < pairs[j].docType
	})

	// The per-department leaves supersede the focus day placeholder
	if len(pairs) > 0 && len(accumulator) > 0 {
		lastYear, lastMonth, lastDay := accumulator[len(accumulator)-1].Timestamp.Date()
		if lastYear == focusYear && lastMonth == focusMonth && lastDay == focusDay {
			accumulator = accumulator[:len(accumulator)-1]
		}
	}

	for _, pair := range pairs {
		accumulator = append(accumulator, models.ArchiveFolderEntry{
			Timestamp: time.Date(focusYear, focusMonth, focusDay, 0, 0, 0, 0, time.UTC),
			Type:      pair.docType,
			Dept:      pair.dept,
		})
	}
	return accumulator
}
