package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// ArchiveEventTypeENUMType archive event type ENUM value type
type ArchiveEventTypeENUMType string

const (
	// ArchiveEventTypeSeeding archive is being seeded with sample documents
	ArchiveEventTypeSeeding ArchiveEventTypeENUMType = "ARCHIVE_SEEDING"

	// ArchiveEventTypeReady archive is ready for use
	ArchiveEventTypeReady ArchiveEventTypeENUMType = "ARCHIVE_READY"

	// ArchiveEventTypeAddNewDocument new document is being archived
	ArchiveEventTypeAddNewDocument ArchiveEventTypeENUMType = "ADD_NEW_DOCUMENT"

	// ArchiveEventTypeAmendDocument archived document is being amended
	ArchiveEventTypeAmendDocument ArchiveEventTypeENUMType = "AMEND_DOCUMENT"

	// ArchiveEventTypeDeleteDocument archived document is deleted
	ArchiveEventTypeDeleteDocument ArchiveEventTypeENUMType = "DELETE_DOCUMENT"
)

// ArchiveEventAudit recording of events occurring at the archive level
type ArchiveEventAudit struct {
	// ID audit entry ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required"`
	// EventType archive event type
	EventType ArchiveEventTypeENUMType `json:"type" gorm:"column:type;not null" validate:"required,archive_event_type"`
	// Metadata a metadata relating to the event
	Metadata datatypes.JSON `json:"metadata,omitempty" gorm:"column:metadata;default:null"`
	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseMetadata parse the metadata based on the event type
func (a ArchiveEventAudit) ParseMetadata(validator *validator.Validate) (interface{}, error) {
	switch a.EventType {
	// Document related archive audit events
	case ArchiveEventTypeAddNewDocument:
		fallthrough
	case ArchiveEventTypeAmendDocument:
		fallthrough
	case ArchiveEventTypeDeleteDocument:
		var parsed ArchiveEventDocumentRelated
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("archive event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)
	}
	return nil, nil
}

// ArchiveEventDocumentRelated archive event metadata related to one document
type ArchiveEventDocumentRelated struct {
	// DocumentID the document ID
	DocumentID string `json:"document_id" validate:"required,uuid_rfc4122"`
	// DocumentType the document kind code
	DocumentType string `json:"document_type" validate:"required,document_kind"`
}
