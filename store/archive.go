// Package store - data storage controllers
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/goutils"
	"github.com/alwitt/larder/db"
	"github.com/alwitt/larder/models"
	"github.com/alwitt/larder/query"
	"github.com/apex/log"
)

// DocumentArchive food-safety document archive controller
type DocumentArchive interface {
	/*
		AddDocument store a new inspection document

			@param ctx context.Context - execution context
			@param document models.ArchiveRecord - the document to store
			@param activeDBClient Database - existing database transaction
			@returns the stored document
	*/
	AddDocument(
		ctx context.Context, document models.ArchiveRecord, activeDBClient db.Database,
	) (models.ArchiveRecord, error)

	/*
		GetDocument fetch an archived document

			@param ctx context.Context - execution context
			@param documentID string - document ID
			@param activeDBClient Database - existing database transaction
			@returns the document
	*/
	GetDocument(
		ctx context.Context, documentID string, activeDBClient db.Database,
	) (models.ArchiveRecord, error)

	/*
		AmendDocument amend an archived document

			@param ctx context.Context - execution context
			@param document models.ArchiveRecord - the amended document
			@param activeDBClient Database - existing database transaction
			@returns the document after the amendment
	*/
	AmendDocument(
		ctx context.Context, document models.ArchiveRecord, activeDBClient db.Database,
	) (models.ArchiveRecord, error)

	/*
		DeleteDocument delete an archived document

			@param ctx context.Context - execution context
			@param documentID string - document ID
			@param activeDBClient Database - existing database transaction
	*/
	DeleteDocument(ctx context.Context, documentID string, activeDBClient db.Database) error

	/*
		ListDocuments list archived documents

			@param ctx context.Context - execution context
			@param filters db.DocumentQueryFilter - entry listing filter
			@param activeDBClient Database - existing database transaction
			@returns list of documents, newest first
	*/
	ListDocuments(
		ctx context.Context, filters db.DocumentQueryFilter, activeDBClient db.Database,
	) ([]models.ArchiveRecord, error)

	/*
		SearchDocuments select archived documents matching the search criteria

			The criteria's kind and department fields narrow the snapshot fetched from
			persistence; the full window and field predicate then run over that snapshot.

			@param ctx context.Context - execution context
			@param criteria models.SearchCriteria - the search parameters
			@param activeDBClient Database - existing database transaction
			@returns the matching documents, newest first
	*/
	SearchDocuments(
		ctx context.Context, criteria models.SearchCriteria, activeDBClient db.Database,
	) ([]models.ArchiveRecord, error)

	/*
		BrowseArchiveFolders derive the archive folder entries for one browse request

			@param ctx context.Context - execution context
			@param period models.PeriodENUMType - requested folder granularity
			@param focus time.Time - reference date anchoring the finer granularities
			@param typeFilter string - when non-empty, only consider documents of this kind
			@param deptFilter string - when non-empty, only consider documents of this department
			@param activeDBClient Database - existing database transaction
			@returns the folder entries
	*/
	BrowseArchiveFolders(
		ctx context.Context,
		period models.PeriodENUMType,
		focus time.Time,
		typeFilter string,
		deptFilter string,
		activeDBClient db.Database,
	) ([]models.ArchiveFolderEntry, error)

	/*
		ListArchiveEvents list the captured archive audit events

			@param ctx context.Context - execution context
			@param filters db.ArchiveEventQueryFilter - entry listing filter
			@param activeDBClient Database - existing database transaction
			@returns list of archive events, oldest first
	*/
	ListArchiveEvents(
		ctx context.Context, filters db.ArchiveEventQueryFilter, activeDBClient db.Database,
	) ([]models.ArchiveEventAudit, error)

	/*
		SeedSampleData populate a fresh archive with sample documents

			Only runs when the archive is still in its pre-seed state; otherwise a NOOP.

			@param ctx context.Context - execution context
			@param referenceDay time.Time - the day the newest sample documents fall on
			@param activeDBClient Database - existing database transaction
	*/
	SeedSampleData(ctx context.Context, referenceDay time.Time, activeDBClient db.Database) error
}

// documentArchiveImpl implements DocumentArchive
type documentArchiveImpl struct {
	goutils.Component

	persistence db.Client
}

/*
NewDocumentArchive define new document archive controller

	@param ctx context.Context - execution context
	@param persistence db.Client - persistence layer client
	@returns archive instance
*/
func NewDocumentArchive(_ context.Context, persistence db.Client) (DocumentArchive, error) {
	logTags := log.Fields{"module": "store", "component": "document-archive"}

	instance := &documentArchiveImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		persistence: persistence,
	}

	return instance, nil
}

/*
AddDocument store a new inspection document

	@param ctx context.Context - execution context
	@param document models.ArchiveRecord - the document to store
	@param activeDBClient Database - existing database transaction
	@returns the stored document
*/
func (s *documentArchiveImpl) AddDocument(
	ctx context.Context, document models.ArchiveRecord, activeDBClient db.Database,
) (models.ArchiveRecord, error) {
	var stored models.ArchiveRecord

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			var err error
			stored, err = dbClient.CreateDocument(dbCtx, document)
			return err
		},
	); dbErr != nil {
		return models.ArchiveRecord{}, fmt.Errorf("failed to store new document [%w]", dbErr)
	}

	return stored, nil
}

/*
GetDocument fetch an archived document

	@param ctx context.Context - execution context
	@param documentID string - document ID
	@param activeDBClient Database - existing database transaction
	@returns the document
*/
func (s *documentArchiveImpl) GetDocument(
	ctx context.Context, documentID string, activeDBClient db.Database,
) (models.ArchiveRecord, error) {
	var document models.ArchiveRecord

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			var err error
			document, err = dbClient.GetDocument(dbCtx, documentID)
			return err
		},
	); dbErr != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"failed to fetch document '%s' [%w]", documentID, dbErr,
		)
	}

	return document, nil
}

/*
AmendDocument amend an archived document

	@param ctx context.Context - execution context
	@param document models.ArchiveRecord - the amended document
	@param activeDBClient Database - existing database transaction
	@returns the document after the amendment
*/
func (s *documentArchiveImpl) AmendDocument(
	ctx context.Context, document models.ArchiveRecord, activeDBClient db.Database,
) (models.ArchiveRecord, error) {
	var amended models.ArchiveRecord

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			var err error
			amended, err = dbClient.UpdateDocument(dbCtx, document)
			return err
		},
	); dbErr != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"failed to amend document '%s' [%w]", document.ID, dbErr,
		)
	}

	return amended, nil
}

/*
DeleteDocument delete an archived document

	@param ctx context.Context - execution context
	@param documentID string - document ID
	@param activeDBClient Database - existing database transaction
*/
func (s *documentArchiveImpl) DeleteDocument(
	ctx context.Context, documentID string, activeDBClient db.Database,
) error {
	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			return dbClient.DeleteDocument(dbCtx, documentID)
		},
	); dbErr != nil {
		return fmt.Errorf("failed to delete document '%s' [%w]", documentID, dbErr)
	}

	return nil
}

/*
ListDocuments list archived documents

	@param ctx context.Context - execution context
	@param filters db.DocumentQueryFilter - entry listing filter
	@param activeDBClient Database - existing database transaction
	@returns list of documents, newest first
*/
func (s *documentArchiveImpl) ListDocuments(
	ctx context.Context, filters db.DocumentQueryFilter, activeDBClient db.Database,
) ([]models.ArchiveRecord, error) {
	var documents []models.ArchiveRecord

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			var err error
			documents, err = dbClient.ListDocuments(dbCtx, filters)
			return err
		},
	); dbErr != nil {
		return nil, fmt.Errorf("failed to list archived documents [%w]", dbErr)
	}

	return documents, nil
}

/*
SearchDocuments select archived documents matching the search criteria

	@param ctx context.Context - execution context
	@param criteria models.SearchCriteria - the search parameters
	@param activeDBClient Database - existing database transaction
	@returns the matching documents, newest first
*/
func (s *documentArchiveImpl) SearchDocuments(
	ctx context.Context, criteria models.SearchCriteria, activeDBClient db.Database,
) ([]models.ArchiveRecord, error) {
	// Coarse scope for the snapshot. The remaining predicate fields and the
	// window itself are handled by the resolver.
	snapshotFilter := db.DocumentQueryFilter{}
	if criteria.Type != nil {
		snapshotFilter.Types = []string{*criteria.Type}
	}
	if criteria.Dept != nil {
		snapshotFilter.Depts = []string{*criteria.Dept}
	}

	var snapshot []models.ArchiveRecord
	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			var err error
			snapshot, err = dbClient.ListDocuments(dbCtx, snapshotFilter)
			return err
		},
	); dbErr != nil {
		return nil, fmt.Errorf("failed to fetch document snapshot for search [%w]", dbErr)
	}

	matched, err := query.Resolve(criteria, snapshot, time.Now())
	if err != nil {
		return nil, fmt.Errorf("document search failed [%w]", err)
	}

	return matched, nil
}

/*
BrowseArchiveFolders derive the archive folder entries for one browse request

	@param ctx context.Context - execution context
	@param period models.PeriodENUMType - requested folder granularity
	@param focus time.Time - reference date anchoring the finer granularities
	@param typeFilter string - when non-empty, only consider documents of this kind
	@param deptFilter string - when non-empty, only consider documents of this department
	@param activeDBClient Database - existing database transaction
	@returns the folder entries
*/
func (s *documentArchiveImpl) BrowseArchiveFolders(
	ctx context.Context,
	period models.PeriodENUMType,
	focus time.Time,
	typeFilter string,
	deptFilter string,
	activeDBClient db.Database,
) ([]models.ArchiveFolderEntry, error) {
	var summaries []models.ArchiveRecordSummary

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			var err error
			summaries, err = dbClient.ListDocumentSummaries(dbCtx, db.DocumentQueryFilter{})
			return err
		},
	); dbErr != nil {
		return nil, fmt.Errorf("failed to fetch document summaries for browsing [%w]", dbErr)
	}

	return query.BuildHierarchy(summaries, period, focus, typeFilter, deptFilter), nil
}

/*
ListArchiveEvents list the captured archive audit events

	@param ctx context.Context - execution context
	@param filters db.ArchiveEventQueryFilter - entry listing filter
	@param activeDBClient Database - existing database transaction
	@returns list of archive events, oldest first
*/
func (s *documentArchiveImpl) ListArchiveEvents(
	ctx context.Context, filters db.ArchiveEventQueryFilter, activeDBClient db.Database,
) ([]models.ArchiveEventAudit, error) {
	var events []models.ArchiveEventAudit

	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			var err error
			events, err = dbClient.ListArchiveEvents(dbCtx, filters)
			return err
		},
	); dbErr != nil {
		return nil, fmt.Errorf("failed to list archive audit events [%w]", dbErr)
	}

	return events, nil
}

/*
SeedSampleData populate a fresh archive with sample documents

	@param ctx context.Context - execution context
	@param referenceDay time.Time - the day the newest sample documents fall on
	@param activeDBClient Database - existing database transaction
*/
func (s *documentArchiveImpl) SeedSampleData(
	ctx context.Context, referenceDay time.Time, activeDBClient db.Database,
) error {
	if dbErr := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(dbCtx context.Context, dbClient db.Database) error {
			params, err := dbClient.GetArchiveParamEntry(dbCtx)
			if err != nil {
				return fmt.Errorf("unable to check archive state [%w]", err)
			}

			if params.State != models.ArchiveStatePreSeed {
				log.WithFields(s.LogTags).
					WithField("archive-state", params.State).
					Debug("Archive already seeded. Skipping")
				return nil
			}

			if err := dbClient.MarkArchiveSeeding(dbCtx); err != nil {
				return fmt.Errorf("unable to mark archive seeding [%w]", err)
			}

			for _, document := range db.GenerateSampleDocuments(referenceDay) {
				if _, err := dbClient.CreateDocument(dbCtx, document); err != nil {
					return fmt.Errorf("failed to store sample document [%w]", err)
				}
			}

			return dbClient.MarkArchiveReady(dbCtx)
		},
	); dbErr != nil {
		return fmt.Errorf("failed to seed archive sample data [%w]", dbErr)
	}

	return nil
}
