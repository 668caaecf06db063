// Package larder - food-safety inspection document archive
package larder

import (
	"context"
	"fmt"

	"github.com/alwitt/larder/db"
	"github.com/alwitt/larder/store"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
NewDocumentArchive initialize a document archive instance.

Each instance is backed by a SQL database; two instances using the same database are
essentially copies of each other.

	@param ctx context.Context - execution context
	@param dbDialector gorm.Dialector - GORM dialector
	@param dbLogLevel logger.LogLevel - SQL log level
	@returns new archive instance
*/
func NewDocumentArchive(
	ctx context.Context,
	dbDialector gorm.Dialector,
	dbLogLevel logger.LogLevel,
) (store.DocumentArchive, error) {
	// Prepare persistence
	persistence, err := db.NewConnection(dbDialector, dbLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialized persistence client [%w]", err)
	}

	archive, err := store.NewDocumentArchive(ctx, persistence)
	if err != nil {
		return nil, fmt.Errorf("failed to initialized document archive [%w]", err)
	}

	return archive, nil
}
