package db

import "github.com/alwitt/larder/models"

// --------------------------------------------------------------------------------------
// Archive audit events

// ArchiveEventAuditDBEntry archive audit event DB entry
type ArchiveEventAuditDBEntry struct {
	models.ArchiveEventAudit
}

// TableName hard code table name
func (ArchiveEventAuditDBEntry) TableName() string {
	return "archive_audit_events"
}

// --------------------------------------------------------------------------------------
// Archive parameters

// ArchiveParamsDBEntry archive operating parameter DB entry
type ArchiveParamsDBEntry struct {
	models.ArchiveParams
}

// TableName hard code table name
func (ArchiveParamsDBEntry) TableName() string {
	return "archive_params"
}

// --------------------------------------------------------------------------------------
// Archived documents

// ArchiveRecordDBEntry archived document DB entry
type ArchiveRecordDBEntry struct {
	models.ArchiveRecord
}

// TableName hard code table name
func (ArchiveRecordDBEntry) TableName() string {
	return "archive_records"
}
