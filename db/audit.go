// Package db - persistence layer
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alwitt/larder/models"
	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
)

// defineNewArchiveEvent record a new archive event
func (d *databaseImpl) defineNewArchiveEvent(
	eventType models.ArchiveEventTypeENUMType, metadata interface{},
) (models.ArchiveEventAudit, error) {

	newEntry := ArchiveEventAuditDBEntry{
		ArchiveEventAudit: models.ArchiveEventAudit{ID: ulid.Make().String(), EventType: eventType},
	}

	if metadata != nil {
		if err := d.validator.Struct(metadata); err != nil {
			return models.ArchiveEventAudit{}, fmt.Errorf(
				"new archive event '%s' metadata entry is not valid [%w]", eventType, err,
			)
		}

		metadataStr, _ := json.Marshal(&metadata)
		newEntry.Metadata = datatypes.JSON(metadataStr)
	}

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.ArchiveEventAudit{}, fmt.Errorf(
			"new archive event '%s' entry is not valid [%w]", eventType, err,
		)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.ArchiveEventAudit{}, fmt.Errorf(
			"new archive event '%s' insert failed [%w]", eventType, tmp.Error,
		)
	}

	return newEntry.ArchiveEventAudit, nil
}

/*
ListArchiveEvents list captured archive events

	@param ctx context.Context - execution context
	@param filters ArchiveEventQueryFilter - entry listing filter
	@return list of archive events
*/
func (d *databaseImpl) ListArchiveEvents(
	_ context.Context, filters ArchiveEventQueryFilter,
) ([]models.ArchiveEventAudit, error) {
	query := d.db.Model(&ArchiveEventAuditDBEntry{})

	if len(filters.EventTypes) > 0 {
		query = query.Where("type in ?", filters.EventTypes)
	}

	if filters.EventsAfter != nil {
		query = query.Where("created_at >= ?", *filters.EventsAfter)
	}
	if filters.EventsBefore != nil {
		query = query.Where("created_at <= ?", *filters.EventsBefore)
	}

	if filters.Limit != nil {
		query = query.Limit(*filters.Limit)
	}
	if filters.Offset != nil {
		query = query.Offset(*filters.Offset)
	}

	query = query.Order("created_at")

	var entries []ArchiveEventAuditDBEntry
	if tmp := query.Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list captured archive events [%w]", tmp.Error)
	}

	result := []models.ArchiveEventAudit{}
	for _, entry := range entries {
		result = append(result, entry.ArchiveEventAudit)
	}

	return result, nil
}
