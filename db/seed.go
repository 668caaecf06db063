package db

import (
	"time"

	"github.com/alwitt/larder/models"
	"github.com/google/uuid"
)

// Rotating sample content for a freshly seeded archive
var (
	sampleStaff       = []string{"A. Cook", "B. Porter", "C. Reyes"}
	sampleSupervisors = []string{"D. Ashford", "E. Lin"}
	sampleFoods       = []string{"Chicken", "Salmon", "Beef Mince", "Milk", "Lettuce", "Rice"}
	sampleSuppliers   = []string{"Acme Foods", "Fresh Direct", "Midland Meats"}
	sampleDepts       = []string{"Kitchen", "Prep-Area", "Stores"}
)

/*
GenerateSampleDocuments build the sample inspection documents used to seed a
fresh archive.

Produces four weeks of plausible daily paperwork ending on the reference day:
opening and closing checks, deliveries in, chilled storage readings, and hot
serving checks, spread across the sample departments. Content rotates
deterministically by day so repeated calls with the same reference day differ
only in the generated document IDs.

	@param referenceDay time.Time - the day the newest sample documents fall on
	@returns the sample documents, oldest first
*/
func GenerateSampleDocuments(referenceDay time.Time) []models.ArchiveRecord {
	year, month, day := referenceDay.Date()
	anchor := time.Date(year, month, day, 0, 0, 0, 0, referenceDay.Location())

	documents := []models.ArchiveRecord{}
	for offset := 27; offset >= 0; offset-- {
		date := anchor.AddDate(0, 0, -offset)
		staff := sampleStaff[offset%len(sampleStaff)]
		supervisor := sampleSupervisors[offset%len(sampleSupervisors)]
		dept := sampleDepts[offset%len(sampleDepts)]

		// Opening checks
		documents = append(documents, models.ArchiveRecord{
			ID:        uuid.NewString(),
			Timestamp: date.Add(7*time.Hour + 30*time.Minute),
			Type:      "OPN:",
			Dept:      dept,
			UseByDate: models.UseByDateNotApplicable,
			Comment:   "All opening checks completed",
			Sign:      staff,
		})

		// Deliveries in. Every few days a delivery arrives with an expired item.
		useBy := models.UseByDateChecked
		if offset%7 == 3 {
			useBy = models.UseByDateExpired
		}
		checkDate := date.Add(11 * time.Hour)
		documents = append(documents, models.ArchiveRecord{
			ID:          uuid.NewString(),
			Timestamp:   date.Add(9*time.Hour + 15*time.Minute),
			Type:        "SC1:",
			Dept:        "Stores",
			Food:        sampleFoods[offset%len(sampleFoods)],
			Supplier:    sampleSuppliers[offset%len(sampleSuppliers)],
			UseByDate:   useBy,
			Temperature: 3.0 + float64(offset%4)*0.5,
			Sign:        staff,
			SignOff:     supervisor,
			CheckDate:   &checkDate,
		})

		// Chiller check reading
		documents = append(documents, models.ArchiveRecord{
			ID:          uuid.NewString(),
			Timestamp:   date.Add(11 * time.Hour),
			Type:        "SC2:",
			Dept:        dept,
			UseByDate:   models.UseByDateNotApplicable,
			Temperature: 2.0 + float64(offset%3),
			Sign:        staff,
		})

		// Hot holding check
		documents = append(documents, models.ArchiveRecord{
			ID:          uuid.NewString(),
			Timestamp:   date.Add(12*time.Hour + 30*time.Minute),
			Type:        "SC4:",
			Dept:        "Kitchen",
			Food:        sampleFoods[(offset+2)%len(sampleFoods)],
			UseByDate:   models.UseByDateNotApplicable,
			Temperature: 68.0 + float64(offset%5),
			Sign:        staff,
			SignOff:     supervisor,
		})

		// Closing checks
		documents = append(documents, models.ArchiveRecord{
			ID:        uuid.NewString(),
			Timestamp: date.Add(21*time.Hour + 45*time.Minute),
			Type:      "CLS:",
			Dept:      dept,
			UseByDate: models.UseByDateNotApplicable,
			Comment:   "Premises secured",
			Sign:      staff,
		})
	}

	return documents
}
