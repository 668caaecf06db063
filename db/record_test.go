package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/larder/db"
	"github.com/alwitt/larder/models"
	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

// TestDBDocumentCRUD verifies the behavior of `Database.CreateDocument`,
// `Database.GetDocument`, `Database.UpdateDocument`, and `Database.DeleteDocument`.
func TestDBDocumentCRUD(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	// Create a unique temporary DB file for this test
	testDB := fmt.Sprintf("/tmp/larder_ut_%s.db", ulid.Make().String())
	log.WithField("db", testDB).Debug("Test database")

	// Create a new DB connection
	uut, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)

	// Create database tables
	assert.Nil(uut.RunSQLInTransaction(utCtx, db.DefineTables))

	// -------------------------------------------------------------------------
	// 1 – Store a new document (test document 1)
	var doc1 models.ArchiveRecord
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		d, err := dbClient.CreateDocument(ctx, models.ArchiveRecord{
			Timestamp: time.Date(2024, time.March, 10, 9, 15, 0, 0, time.UTC),
			Type:      "SC1:",
			Dept:      "Stores",
			Food:      "Chicken",
			Supplier:  "Acme Foods",
			UseByDate: models.UseByDateChecked,
			Sign:      "A. Cook",
		})
		if err != nil {
			return err
		}
		doc1 = d
		return nil
	})
	assert.Nil(err)
	assert.NotEmpty(doc1.ID)

	// 2 – Get back test document 1 and verify its content
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		d, err := dbClient.GetDocument(ctx, doc1.ID)
		if err != nil {
			return err
		}
		assert.Equal("SC1:", d.Type)
		assert.Equal("Stores", d.Dept)
		assert.Equal("Chicken", d.Food)
		assert.Equal(models.UseByDateChecked, d.UseByDate)
		return nil
	})
	assert.Nil(err)

	// -------------------------------------------------------------------------
	// 3 – Store a document with an unregistered kind code (should fail)
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		_, err := dbClient.CreateDocument(ctx, models.ArchiveRecord{
			Timestamp: time.Date(2024, time.March, 10, 9, 15, 0, 0, time.UTC),
			Type:      "XX1:",
			Dept:      "Stores",
			UseByDate: models.UseByDateNotApplicable,
		})
		return err
	})
	assert.Error(err)

	// 4 – Store a document reusing document 1's ID (should fail)
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		_, err := dbClient.CreateDocument(ctx, models.ArchiveRecord{
			ID:        doc1.ID,
			Timestamp: time.Date(2024, time.March, 11, 9, 15, 0, 0, time.UTC),
			Type:      "SC2:",
			Dept:      "Kitchen",
			UseByDate: models.UseByDateNotApplicable,
		})
		return err
	})
	assert.Error(err)

	// -------------------------------------------------------------------------
	// 5 – Amend test document 1
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		amended := doc1
		amended.UseByDate = models.UseByDateExpired
		amended.Comment = "Use-by date passed on arrival"
		amended.SignOff = "D. Ashford"
		d, err := dbClient.UpdateDocument(ctx, amended)
		if err != nil {
			return err
		}
		assert.Equal(models.UseByDateExpired, d.UseByDate)
		return nil
	})
	assert.Nil(err)

	// 6 – Get back test document 1 and verify the amendment
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		d, err := dbClient.GetDocument(ctx, doc1.ID)
		if err != nil {
			return err
		}
		assert.Equal(models.UseByDateExpired, d.UseByDate)
		assert.Equal("Use-by date passed on arrival", d.Comment)
		assert.Equal("D. Ashford", d.SignOff)
		return nil
	})
	assert.Nil(err)

	// 7 – Amend an unknown document (should fail)
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		unknown := doc1
		unknown.ID = uuid.NewString()
		_, err := dbClient.UpdateDocument(ctx, unknown)
		return err
	})
	assert.Error(err)

	// -------------------------------------------------------------------------
	// 8 – Delete test document 1
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		return dbClient.DeleteDocument(ctx, doc1.ID)
	})
	assert.Nil(err)

	// 9 – Get back test document 1 (should fail)
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		_, err := dbClient.GetDocument(ctx, doc1.ID)
		return err
	})
	assert.Error(err)

	// -------------------------------------------------------------------------
	// 10 – The document changes left an audit trail
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		events, err := dbClient.ListArchiveEvents(ctx, db.ArchiveEventQueryFilter{})
		if err != nil {
			return err
		}
		types := []models.ArchiveEventTypeENUMType{}
		for _, event := range events {
			types = append(types, event.EventType)
		}
		assert.Contains(types, models.ArchiveEventTypeAddNewDocument)
		assert.Contains(types, models.ArchiveEventTypeAmendDocument)
		assert.Contains(types, models.ArchiveEventTypeDeleteDocument)
		return nil
	})
	assert.Nil(err)
}

// TestDBListDocuments verifies the behavior of `Database.ListDocuments` and
// `Database.ListDocumentSummaries`.
func TestDBListDocuments(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	testDB := fmt.Sprintf("/tmp/larder_ut_%s.db", ulid.Make().String())
	log.WithField("db", testDB).Debug("Test database")

	uut, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)
	assert.Nil(uut.RunSQLInTransaction(utCtx, db.DefineTables))

	documents := []models.ArchiveRecord{
		{
			Timestamp: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
			Type:      "SC1:",
			Dept:      "Stores",
			UseByDate: models.UseByDateChecked,
		},
		{
			Timestamp: time.Date(2024, time.March, 11, 11, 0, 0, 0, time.UTC),
			Type:      "SC2:",
			Dept:      "Kitchen",
			UseByDate: models.UseByDateNotApplicable,
		},
		{
			Timestamp: time.Date(2024, time.March, 12, 7, 30, 0, 0, time.UTC),
			Type:      "SC1:",
			Dept:      "Kitchen",
			UseByDate: models.UseByDateChecked,
		},
	}

	// -------------------------------------------------------------------------
	// 1 – Store the test documents
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		for idx, document := range documents {
			stored, err := dbClient.CreateDocument(ctx, document)
			if err != nil {
				return err
			}
			documents[idx] = stored
		}
		return nil
	})
	assert.Nil(err)

	// 2 – List everything. Results come back newest first.
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		found, err := dbClient.ListDocuments(ctx, db.DocumentQueryFilter{})
		if err != nil {
			return err
		}
		assert.Len(found, 3)
		assert.Equal(documents[2].ID, found[0].ID)
		assert.Equal(documents[1].ID, found[1].ID)
		assert.Equal(documents[0].ID, found[2].ID)
		return nil
	})
	assert.Nil(err)

	// 3 – List by kind code
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		found, err := dbClient.ListDocuments(ctx, db.DocumentQueryFilter{Types: []string{"SC1:"}})
		if err != nil {
			return err
		}
		assert.Len(found, 2)
		assert.Equal(documents[2].ID, found[0].ID)
		assert.Equal(documents[0].ID, found[1].ID)
		return nil
	})
	assert.Nil(err)

	// 4 – List by department and time window
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		after := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
		before := time.Date(2024, time.March, 11, 23, 59, 59, 0, time.UTC)
		found, err := dbClient.ListDocuments(ctx, db.DocumentQueryFilter{
			Depts: []string{"Kitchen"}, After: &after, Before: &before,
		})
		if err != nil {
			return err
		}
		assert.Len(found, 1)
		assert.Equal(documents[1].ID, found[0].ID)
		return nil
	})
	assert.Nil(err)

	// 5 – List summaries. Results come back oldest first with the projection
	// fields populated.
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		found, err := dbClient.ListDocumentSummaries(ctx, db.DocumentQueryFilter{})
		if err != nil {
			return err
		}
		assert.Len(found, 3)
		assert.Equal(documents[0].ID, found[0].ID)
		assert.Equal(documents[1].ID, found[1].ID)
		assert.Equal(documents[2].ID, found[2].ID)
		assert.Equal("SC1:", found[0].Type)
		assert.Equal("Stores", found[0].Dept)
		return nil
	})
	assert.Nil(err)
}

// TestDBSeedDocuments verifies the sample documents from `db.GenerateSampleDocuments`
// can be stored.
func TestDBSeedDocuments(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	testDB := fmt.Sprintf("/tmp/larder_ut_%s.db", ulid.Make().String())
	log.WithField("db", testDB).Debug("Test database")

	uut, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)
	assert.Nil(uut.RunSQLInTransaction(utCtx, db.DefineTables))

	referenceDay := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	samples := db.GenerateSampleDocuments(referenceDay)
	assert.NotEmpty(samples)

	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		for _, document := range samples {
			if _, err := dbClient.CreateDocument(ctx, document); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Nil(err)

	// The samples span four weeks ending on the reference day
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		found, err := dbClient.ListDocuments(ctx, db.DocumentQueryFilter{})
		if err != nil {
			return err
		}
		assert.Len(found, len(samples))
		newest := found[0].Timestamp
		oldest := found[len(found)-1].Timestamp
		assert.Equal(referenceDay.Day(), newest.Day())
		assert.True(newest.Sub(oldest) < 28*24*time.Hour)
		return nil
	})
	assert.Nil(err)
}
