package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/goutils"
	"github.com/alwitt/larder/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CommonListEntryQueryFilter common query filter when listing data entries
type CommonListEntryQueryFilter struct {
	Limit  *int
	Offset *int
}

// ArchiveEventQueryFilter audit event query filter conditions
type ArchiveEventQueryFilter struct {
	CommonListEntryQueryFilter
	// EventTypes the specific event types to query for
	EventTypes []models.ArchiveEventTypeENUMType
	// EventsAfter filter for events after this timestamp
	EventsAfter *time.Time
	// EventsBefore filter for events before this timestamp
	EventsBefore *time.Time
}

// DocumentQueryFilter archived document query filter conditions
type DocumentQueryFilter struct {
	CommonListEntryQueryFilter
	// Types the specific document kind codes to query for
	Types []string
	// Depts the specific catering departments to query for
	Depts []string
	// After filter for documents timestamped at or after this instant
	After *time.Time
	// Before filter for documents timestamped at or before this instant
	Before *time.Time
}

// Database the database handle to interacting with the data base
type Database interface {
	// ------------------------------------------------------------------------------------
	// Archive audit events

	/*
		ListArchiveEvents list captured archive events

			@param ctx context.Context - execution context
			@param filters ArchiveEventQueryFilter - entry listing filter
			@return list of archive events
	*/
	ListArchiveEvents(
		ctx context.Context, filters ArchiveEventQueryFilter,
	) ([]models.ArchiveEventAudit, error)

	// ------------------------------------------------------------------------------------
	// Archive parameters

	/*
		GetArchiveParamEntry fetch the global singleton archive parameter entry

			@param ctx context.Context - execution context
			@returns the entry
	*/
	GetArchiveParamEntry(ctx context.Context) (models.ArchiveParams, error)

	/*
		MarkArchiveSeeding mark archive is loading its sample documents

			@param ctx context.Context - execution context
	*/
	MarkArchiveSeeding(ctx context.Context) error

	/*
		MarkArchiveReady mark archive ready for use

			@param ctx context.Context - execution context
	*/
	MarkArchiveReady(ctx context.Context) error

	// ------------------------------------------------------------------------------------
	// Archived documents

	/*
		CreateDocument store a new document in the archive

			@param ctx context.Context - execution context
			@param document models.ArchiveRecord - the document to store. A missing ID is
			    assigned on insert.
			@returns the stored document
	*/
	CreateDocument(ctx context.Context, document models.ArchiveRecord) (models.ArchiveRecord, error)

	/*
		GetDocument fetch an archived document by ID

			@param ctx context.Context - execution context
			@param documentID string - document ID
			@returns the document
	*/
	GetDocument(ctx context.Context, documentID string) (models.ArchiveRecord, error)

	/*
		UpdateDocument amend an archived document

			@param ctx context.Context - execution context
			@param document models.ArchiveRecord - the amended document. The ID selects the
			    entry being amended.
			@returns the document after the amendment
	*/
	UpdateDocument(ctx context.Context, document models.ArchiveRecord) (models.ArchiveRecord, error)

	/*
		DeleteDocument delete an archived document

			@param ctx context.Context - execution context
			@param documentID string - document ID
	*/
	DeleteDocument(ctx context.Context, documentID string) error

	/*
		ListDocuments list archived documents

			@param ctx context.Context - execution context
			@param filters DocumentQueryFilter - entry listing filter
			@return list of documents, newest first
	*/
	ListDocuments(
		ctx context.Context, filters DocumentQueryFilter,
	) ([]models.ArchiveRecord, error)

	/*
		ListDocumentSummaries list summary projections of archived documents

			@param ctx context.Context - execution context
			@param filters DocumentQueryFilter - entry listing filter
			@return list of document summaries, oldest first
	*/
	ListDocumentSummaries(
		ctx context.Context, filters DocumentQueryFilter,
	) ([]models.ArchiveRecordSummary, error)
}

// databaseImpl implements Database
type databaseImpl struct {
	goutils.Component
	db        *gorm.DB
	validator *validator.Validate
}

// newDatabase define a new database client
func newDatabase(_ context.Context, sqlClient *gorm.DB) (Database, error) {
	logTags := log.Fields{"package": "larder", "module": "db", "component": "db-client"}

	instance := &databaseImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		db:        sqlClient,
		validator: validator.New(),
	}

	if err := models.RegisterWithValidator(instance.validator); err != nil {
		return nil, fmt.Errorf("failed to install custom validation macros [%w]", err)
	}

	return instance, nil
}
