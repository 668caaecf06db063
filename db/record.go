package db

import (
	"context"
	"fmt"

	"github.com/alwitt/larder/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ======================================================================================
// Archived documents

/*
CreateDocument store a new document in the archive

	@param ctx context.Context - execution context
	@param document models.ArchiveRecord - the document to store. A missing ID is
	    assigned on insert.
	@returns the stored document
*/
func (d *databaseImpl) CreateDocument(
	_ context.Context, document models.ArchiveRecord,
) (models.ArchiveRecord, error) {
	if document.ID == "" {
		document.ID = uuid.NewString()
	}
	newEntry := ArchiveRecordDBEntry{ArchiveRecord: document}

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"new document '%s' is not valid [%w]", document.ID, err,
		)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"new document '%s' failed insert [%w]", document.ID, tmp.Error,
		)
	}

	// Record this event
	if _, err := d.defineNewArchiveEvent(
		models.ArchiveEventTypeAddNewDocument,
		models.ArchiveEventDocumentRelated{DocumentID: newEntry.ID, DocumentType: newEntry.Type},
	); err != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"failed to log add new document '%s' audit event [%w]", document.ID, err,
		)
	}

	return newEntry.ArchiveRecord, nil
}

// getDocumentEntry find an archived document by ID
func (d *databaseImpl) getDocumentEntry(documentID string) (ArchiveRecordDBEntry, error) {
	var entry ArchiveRecordDBEntry
	err := d.db.Where("id = ?", documentID).First(&entry).Error
	return entry, err
}

/*
GetDocument fetch an archived document by ID

	@param ctx context.Context - execution context
	@param documentID string - document ID
	@returns the document
*/
func (d *databaseImpl) GetDocument(
	_ context.Context, documentID string,
) (models.ArchiveRecord, error) {
	entry, err := d.getDocumentEntry(documentID)
	if err != nil {
		return models.ArchiveRecord{}, fmt.Errorf("failed to fetch document %s [%w]", documentID, err)
	}

	return entry.ArchiveRecord, nil
}

/*
UpdateDocument amend an archived document

	@param ctx context.Context - execution context
	@param document models.ArchiveRecord - the amended document. The ID selects the
	    entry being amended.
	@returns the document after the amendment
*/
func (d *databaseImpl) UpdateDocument(
	_ context.Context, document models.ArchiveRecord,
) (models.ArchiveRecord, error) {
	entry, err := d.getDocumentEntry(document.ID)
	if err != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"failed to fetch document %s [%w]", document.ID, err,
		)
	}

	document.CreatedAt = entry.CreatedAt
	entry.ArchiveRecord = document

	if err := d.validator.Struct(&entry); err != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"amended document '%s' is not valid [%w]", document.ID, err,
		)
	}

	if tmp := d.db.Save(&entry); tmp.Error != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"amendment of document %s failed [%w]", document.ID, tmp.Error,
		)
	}

	// Record this event
	if _, err := d.defineNewArchiveEvent(
		models.ArchiveEventTypeAmendDocument,
		models.ArchiveEventDocumentRelated{DocumentID: entry.ID, DocumentType: entry.Type},
	); err != nil {
		return models.ArchiveRecord{}, fmt.Errorf(
			"failed to log amend document '%s' audit event [%w]", document.ID, err,
		)
	}

	return entry.ArchiveRecord, nil
}

/*
DeleteDocument delete an archived document

	@param ctx context.Context - execution context
	@param documentID string - document ID
*/
func (d *databaseImpl) DeleteDocument(_ context.Context, documentID string) error {
	entry, err := d.getDocumentEntry(documentID)
	if err != nil {
		return fmt.Errorf("failed to fetch document %s [%w]", documentID, err)
	}

	if tmp := d.db.Delete(&entry); tmp.Error != nil {
		return fmt.Errorf("failed to delete document %s [%w]", documentID, tmp.Error)
	}

	// Record this event
	if _, err := d.defineNewArchiveEvent(
		models.ArchiveEventTypeDeleteDocument,
		models.ArchiveEventDocumentRelated{DocumentID: entry.ID, DocumentType: entry.Type},
	); err != nil {
		return fmt.Errorf(
			"failed to log delete document '%s' audit event [%w]", documentID, err,
		)
	}

	return nil
}

// applyDocumentQueryFilters apply the document listing filter conditions
func applyDocumentQueryFilters(query *gorm.DB, filters DocumentQueryFilter) *gorm.DB {
	if len(filters.Types) > 0 {
		query = query.Where("type in ?", filters.Types)
	}
	if len(filters.Depts) > 0 {
		query = query.Where("dept in ?", filters.Depts)
	}

	if filters.After != nil {
		query = query.Where("timestamp >= ?", *filters.After)
	}
	if filters.Before != nil {
		query = query.Where("timestamp <= ?", *filters.Before)
	}

	if filters.Limit != nil {
		query = query.Limit(*filters.Limit)
	}
	if filters.Offset != nil {
		query = query.Offset(*filters.Offset)
	}

	return query
}

/*
ListDocuments list archived documents

	@param ctx context.Context - execution context
	@param filters DocumentQueryFilter - entry listing filter
	@return list of documents, newest first
*/
func (d *databaseImpl) ListDocuments(
	_ context.Context, filters DocumentQueryFilter,
) ([]models.ArchiveRecord, error) {
	query := applyDocumentQueryFilters(d.db.Model(&ArchiveRecordDBEntry{}), filters)

	query = query.Order("timestamp desc")

	var entries []ArchiveRecordDBEntry
	if tmp := query.Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list archived documents [%w]", tmp.Error)
	}

	result := []models.ArchiveRecord{}
	for _, entry := range entries {
		result = append(result, entry.ArchiveRecord)
	}

	return result, nil
}

/*
ListDocumentSummaries list summary projections of archived documents

	@param ctx context.Context - execution context
	@param filters DocumentQueryFilter - entry listing filter
	@return list of document summaries, oldest first
*/
func (d *databaseImpl) ListDocumentSummaries(
	_ context.Context, filters DocumentQueryFilter,
) ([]models.ArchiveRecordSummary, error) {
	query := applyDocumentQueryFilters(d.db.Model(&ArchiveRecordDBEntry{}), filters)

	query = query.Select("id", "timestamp", "type", "dept").Order("timestamp")

	result := []models.ArchiveRecordSummary{}
	if tmp := query.Find(&result); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list archived document summaries [%w]", tmp.Error)
	}

	return result, nil
}
