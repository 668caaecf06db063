package query_test

import (
	"testing"
	"time"

	"github.com/alwitt/larder/models"
	"github.com/alwitt/larder/query"
	"github.com/stretchr/testify/assert"
)

// TestSortDocuments verifies the column comparators of `query.SortDocuments`.
func TestSortDocuments(t *testing.T) {
	assert := assert.New(t)

	build := func() []models.ArchiveRecord {
		return []models.ArchiveRecord{
			{
				ID:          "a",
				Timestamp:   time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
				Type:        "SC2:",
				Dept:        "Stores",
				Food:        "Salmon",
				Supplier:    "Fresh Direct",
				Temperature: 4.5,
				UseByDate:   models.UseByDateExpired,
				SignOff:     "D. Manager",
			},
			{
				ID:          "b",
				Timestamp:   time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC),
				Type:        "SC1:",
				Dept:        "Kitchen",
				Food:        "Chicken",
				Supplier:    "Acme Foods",
				Temperature: 72.0,
				UseByDate:   models.UseByDateChecked,
				SignOff:     "A. Super",
			},
			{
				ID:          "c",
				Timestamp:   time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC),
				Type:        "SC3:",
				Dept:        "Prep-Area",
				Food:        "Beef",
				Supplier:    "Midland Meats",
				Temperature: -18.0,
				UseByDate:   models.UseByDateNotApplicable,
				SignOff:     "B. Lead",
			},
		}
	}

	ids := func(records []models.ArchiveRecord) []string {
		result := make([]string, 0, len(records))
		for _, record := range records {
			result = append(result, record.ID)
		}
		return result
	}

	// -------------------------------------------------------------------------
	// 1 – Timestamp order is newest first
	records := build()
	query.SortDocuments(records, query.SortFieldTimestamp)
	assert.Equal([]string{"b", "c", "a"}, ids(records))

	// 2 – Text columns sort ascending
	records = build()
	query.SortDocuments(records, query.SortFieldType)
	assert.Equal([]string{"b", "a", "c"}, ids(records))

	records = build()
	query.SortDocuments(records, query.SortFieldDept)
	assert.Equal([]string{"b", "c", "a"}, ids(records))

	records = build()
	query.SortDocuments(records, query.SortFieldFood)
	assert.Equal([]string{"c", "b", "a"}, ids(records))

	records = build()
	query.SortDocuments(records, query.SortFieldSupplier)
	assert.Equal([]string{"b", "a", "c"}, ids(records))

	records = build()
	query.SortDocuments(records, query.SortFieldSignOff)
	assert.Equal([]string{"b", "c", "a"}, ids(records))

	// 3 – Temperature sorts ascending numerically
	records = build()
	query.SortDocuments(records, query.SortFieldTemperature)
	assert.Equal([]string{"c", "a", "b"}, ids(records))

	// 4 – Unrecognized columns fall back to the timestamp order
	records = build()
	query.SortDocuments(records, query.SortFieldENUMType("no-such-column"))
	assert.Equal([]string{"b", "c", "a"}, ids(records))
}
