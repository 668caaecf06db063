package larder_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/larder"
	"github.com/alwitt/larder/db"
	"github.com/alwitt/larder/models"
	"github.com/apex/log"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

// TestDocumentArchiveEndToEnd performs a full end‑to‑end test of the
// document archive. A temporary SQLite database is created, the
// `larder.NewDocumentArchive` constructor is exercised, and inspection
// documents are seeded, searched, browsed, amended, and finally deleted.
func TestDocumentArchiveEndToEnd(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	// ------------------------------------------------------------------
	// 1. Create a temporary SQLite database
	// ------------------------------------------------------------------
	ctx := context.Background()

	testDB := fmt.Sprintf("/tmp/larder_ut_%s.db", ulid.Make().String())
	dbClient, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)

	// Create tables
	assert.Nil(dbClient.RunSQLInTransaction(ctx, db.DefineTables))

	// ------------------------------------------------------------------
	// 2. Create the document archive
	// ------------------------------------------------------------------
	archive, err := larder.NewDocumentArchive(ctx, db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)

	// ------------------------------------------------------------------
	// 3. Seed the archive with sample paperwork
	// ------------------------------------------------------------------
	referenceDay := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Nil(archive.SeedSampleData(ctx, referenceDay, nil))

	all, err := archive.ListDocuments(ctx, db.DocumentQueryFilter{}, nil)
	assert.Nil(err)
	assert.NotEmpty(all)

	// ------------------------------------------------------------------
	// 4. Search for the reference day's delivery paperwork
	// ------------------------------------------------------------------
	found, err := archive.SearchDocuments(ctx, models.SearchCriteria{
		FromDate: &referenceDay,
		Type:     func() *string { s := "SC1:"; return &s }(),
	}, nil)
	assert.Nil(err)
	assert.Len(found, 1)
	assert.Equal("SC1:", found[0].Type)
	assert.Equal(referenceDay.Day(), found[0].Timestamp.Day())

	// ------------------------------------------------------------------
	// 5. Browse the folder hierarchy around the reference day
	// ------------------------------------------------------------------
	folders, err := archive.BrowseArchiveFolders(
		ctx, models.PeriodAll, referenceDay, "", "", nil,
	)
	assert.Nil(err)
	assert.NotEmpty(folders)
	// The tail of the answer holds the per-department leaves for the focus day
	leaf := folders[len(folders)-1]
	assert.NotEmpty(leaf.Type)
	assert.NotEmpty(leaf.Dept)
	assert.Equal(referenceDay.Day(), leaf.Timestamp.Day())

	// ------------------------------------------------------------------
	// 6. Amend one document and verify the change sticks
	// ------------------------------------------------------------------
	target := found[0]
	target.Comment = "Spot checked during audit"
	amended, err := archive.AmendDocument(ctx, target, nil)
	assert.Nil(err)
	assert.Equal("Spot checked during audit", amended.Comment)

	fetched, err := archive.GetDocument(ctx, target.ID, nil)
	assert.Nil(err)
	assert.Equal("Spot checked during audit", fetched.Comment)

	// ------------------------------------------------------------------
	// 7. Delete the document
	// ------------------------------------------------------------------
	assert.Nil(archive.DeleteDocument(ctx, target.ID, nil))
	_, err = archive.GetDocument(ctx, target.ID, nil)
	assert.Error(err)
}
