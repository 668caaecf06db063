package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/larder/db"
	"github.com/alwitt/larder/models"
	"github.com/alwitt/larder/store"
	"github.com/apex/log"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// TestDocumentArchiveLifecycle verifies the document lifecycle through the
// `DocumentArchive` controller.
func TestDocumentArchiveLifecycle(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	// Create a unique temporary DB file for this test
	testDB := fmt.Sprintf("/tmp/larder_ut_%s.db", ulid.Make().String())
	log.WithField("db", testDB).Debug("Test database")

	dbClient, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)
	assert.Nil(dbClient.RunSQLInTransaction(utCtx, db.DefineTables))

	uut, err := store.NewDocumentArchive(utCtx, dbClient)
	assert.Nil(err)

	// -------------------------------------------------------------------------
	// 1 – Store a new document
	stored, err := uut.AddDocument(utCtx, models.ArchiveRecord{
		Timestamp: time.Date(2024, time.March, 10, 9, 15, 0, 0, time.UTC),
		Type:      "SC1:",
		Dept:      "Stores",
		Food:      "Salmon",
		Supplier:  "Fresh Direct",
		UseByDate: models.UseByDateChecked,
		Sign:      "B. Porter",
	}, nil)
	assert.Nil(err)
	assert.NotEmpty(stored.ID)

	// 2 – Get it back
	fetched, err := uut.GetDocument(utCtx, stored.ID, nil)
	assert.Nil(err)
	assert.Equal("Salmon", fetched.Food)

	// 3 – Amend it
	fetched.SignOff = "E. Lin"
	amended, err := uut.AmendDocument(utCtx, fetched, nil)
	assert.Nil(err)
	assert.Equal("E. Lin", amended.SignOff)

	// 4 – List documents
	listed, err := uut.ListDocuments(utCtx, db.DocumentQueryFilter{}, nil)
	assert.Nil(err)
	assert.Len(listed, 1)
	assert.Equal("E. Lin", listed[0].SignOff)

	// 5 – Delete it
	assert.Nil(uut.DeleteDocument(utCtx, stored.ID, nil))
	_, err = uut.GetDocument(utCtx, stored.ID, nil)
	assert.Error(err)
}

// TestDocumentArchiveSearchAndBrowse verifies `DocumentArchive.SearchDocuments`
// and `DocumentArchive.BrowseArchiveFolders` against stored documents.
func TestDocumentArchiveSearchAndBrowse(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	testDB := fmt.Sprintf("/tmp/larder_ut_%s.db", ulid.Make().String())
	log.WithField("db", testDB).Debug("Test database")

	dbClient, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)
	assert.Nil(dbClient.RunSQLInTransaction(utCtx, db.DefineTables))

	uut, err := store.NewDocumentArchive(utCtx, dbClient)
	assert.Nil(err)

	documents := []models.ArchiveRecord{
		{
			Timestamp: time.Date(2023, time.November, 20, 8, 0, 0, 0, time.UTC),
			Type:      "SC1:",
			Dept:      "Stores",
			Food:      "Chicken",
			UseByDate: models.UseByDateChecked,
		},
		{
			Timestamp: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
			Type:      "SC2:",
			Dept:      "Kitchen",
			UseByDate: models.UseByDateNotApplicable,
		},
		{
			Timestamp: time.Date(2024, time.March, 10, 17, 30, 0, 0, time.UTC),
			Type:      "SC1:",
			Dept:      "Kitchen",
			Food:      "Beef Mince",
			UseByDate: models.UseByDateExpired,
		},
	}
	for idx, document := range documents {
		stored, err := uut.AddDocument(utCtx, document, nil)
		assert.Nil(err)
		documents[idx] = stored
	}

	// -------------------------------------------------------------------------
	// 1 – Search by date window
	found, err := uut.SearchDocuments(utCtx, models.SearchCriteria{
		FromDate: timePtr(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
	}, nil)
	assert.Nil(err)
	assert.Len(found, 2)
	assert.Equal(documents[2].ID, found[0].ID)
	assert.Equal(documents[1].ID, found[1].ID)

	// 2 – Search by kind code
	found, err = uut.SearchDocuments(utCtx, models.SearchCriteria{Type: strPtr("SC1:")}, nil)
	assert.Nil(err)
	assert.Len(found, 2)
	assert.Equal(documents[2].ID, found[0].ID)
	assert.Equal(documents[0].ID, found[1].ID)

	// 3 – Search with an inverted window fails
	_, err = uut.SearchDocuments(utCtx, models.SearchCriteria{
		FromDate: timePtr(time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)),
		ToDate:   timePtr(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
	}, nil)
	assert.Error(err)

	// -------------------------------------------------------------------------
	// 4 – Browse the folder hierarchy
	folders, err := uut.BrowseArchiveFolders(
		utCtx,
		models.PeriodAll,
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		"",
		"",
		nil,
	)
	assert.Nil(err)
	// Years 2023 + 2024, month March, then per-department leaves for the focus
	// day replacing the day entry
	assert.Len(folders, 5)
	assert.Equal(2023, folders[0].Timestamp.Year())
	assert.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), folders[1].Timestamp)
	assert.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), folders[2].Timestamp)
	assert.Equal("SC1:", folders[3].Type)
	assert.Equal("Kitchen", folders[3].Dept)
	assert.Equal("SC2:", folders[4].Type)

	// 5 – Browse restricted by department
	folders, err = uut.BrowseArchiveFolders(
		utCtx,
		models.PeriodYears,
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		"",
		"Stores",
		nil,
	)
	assert.Nil(err)
	assert.Len(folders, 1)
	assert.Equal(2023, folders[0].Timestamp.Year())
}

// TestDocumentArchiveSeeding verifies `DocumentArchive.SeedSampleData` runs
// once and only once.
func TestDocumentArchiveSeeding(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	testDB := fmt.Sprintf("/tmp/larder_ut_%s.db", ulid.Make().String())
	log.WithField("db", testDB).Debug("Test database")

	dbClient, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)
	assert.Nil(dbClient.RunSQLInTransaction(utCtx, db.DefineTables))

	uut, err := store.NewDocumentArchive(utCtx, dbClient)
	assert.Nil(err)

	referenceDay := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	// -------------------------------------------------------------------------
	// 1 – Seed a fresh archive
	assert.Nil(uut.SeedSampleData(utCtx, referenceDay, nil))

	listed, err := uut.ListDocuments(utCtx, db.DocumentQueryFilter{}, nil)
	assert.Nil(err)
	assert.NotEmpty(listed)
	seededCount := len(listed)

	// 2 – The archive is now marked ready
	err = dbClient.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		params, err := dbClient.GetArchiveParamEntry(ctx)
		assert.Nil(err)
		assert.Equal(models.ArchiveStateReady, params.State)
		return err
	})
	assert.Nil(err)

	// 3 – Seeding again is a NOOP
	assert.Nil(uut.SeedSampleData(utCtx, referenceDay, nil))

	listed, err = uut.ListDocuments(utCtx, db.DocumentQueryFilter{}, nil)
	assert.Nil(err)
	assert.Len(listed, seededCount)
}
