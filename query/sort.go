package query

import (
	"sort"

	"github.com/alwitt/larder/models"
)

// SortFieldENUMType document sort column ENUM value type
type SortFieldENUMType string

const (
	// SortFieldTimestamp order by document transaction timestamp, newest first
	SortFieldTimestamp SortFieldENUMType = "timestamp"
	// SortFieldType order by document kind code
	SortFieldType SortFieldENUMType = "type"
	// SortFieldDept order by catering department
	SortFieldDept SortFieldENUMType = "dept"
	// SortFieldFood order by food item
	SortFieldFood SortFieldENUMType = "food"
	// SortFieldSupplier order by supplier name
	SortFieldSupplier SortFieldENUMType = "supplier"
	// SortFieldTemperature order by recorded temperature
	SortFieldTemperature SortFieldENUMType = "temperature"
	// SortFieldUseByDate order by use-by-date check result
	SortFieldUseByDate SortFieldENUMType = "use_by_date"
	// SortFieldSignOff order by supervisor sign-off
	SortFieldSignOff SortFieldENUMType = "sign_off"
)

/*
SortDocuments order the records by the requested column, in place.

Text and numeric columns sort ascending. The timestamp column sorts newest
first, and any unrecognized column falls back to that same timestamp order.
The sort is stable, so equal keys keep their relative order.

	@param records []models.ArchiveRecord - the records to order
	@param field SortFieldENUMType - the sort column
*/
func SortDocuments(records []models.ArchiveRecord, field SortFieldENUMType) {
	var less func(l, r models.ArchiveRecord) bool
	switch field {
	case SortFieldType:
		less = func(l, r models.ArchiveRecord) bool { return l.Type < r.Type }
	case SortFieldDept:
		less = func(l, r models.ArchiveRecord) bool { return l.Dept < r.Dept }
	case SortFieldFood:
		less = func(l, r models.ArchiveRecord) bool { return l.Food < r.Food }
	case SortFieldSupplier:
		less = func(l, r models.ArchiveRecord) bool { return l.Supplier < r.Supplier }
	case SortFieldTemperature:
		less = func(l, r models.ArchiveRecord) bool { return l.Temperature < r.Temperature }
	case SortFieldUseByDate:
		less = func(l, r models.ArchiveRecord) bool { return l.UseByDate < r.UseByDate }
	case SortFieldSignOff:
		less = func(l, r models.ArchiveRecord) bool { return l.SignOff < r.SignOff }
	default:
		less = func(l, r models.ArchiveRecord) bool { return l.Timestamp.After(r.Timestamp) }
	}

	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}
