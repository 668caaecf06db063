package db

import (
	"context"

	"gorm.io/gorm"
)

/*
DefineTables prepare a database with the archive tables

Used by server startup against a fresh database, and by unit tests. Meant to
run via `Client.RunSQLInTransaction`.

	@param ctx context.Context - execution context
	@param db *gorm.DB - the database handle
*/
func DefineTables(_ context.Context, db *gorm.DB) error {
	return db.AutoMigrate(
		ArchiveEventAuditDBEntry{},
		ArchiveParamsDBEntry{},
		ArchiveRecordDBEntry{},
	)
}
