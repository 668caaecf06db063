package db

import (
	"context"
	"fmt"

	"github.com/alwitt/larder/models"
)

// GlobalArchiveParamEntryID ID of the singleton archive parameter entry
const GlobalArchiveParamEntryID = "archive-parameters"

// getArchiveParamEntry fetch the archive param entry
//
// If the entry does not exist, initialize a new one.
func (d *databaseImpl) getArchiveParamEntry() (ArchiveParamsDBEntry, error) {
	var entries []ArchiveParamsDBEntry
	dbErr := d.db.Where("id = ?", GlobalArchiveParamEntryID).Find(&entries).Error
	if dbErr != nil {
		return ArchiveParamsDBEntry{}, fmt.Errorf("failed to read archive params table [%w]", dbErr)
	}
	if len(entries) == 0 {
		// Make a new one
		newEntry := ArchiveParamsDBEntry{
			ArchiveParams: models.ArchiveParams{
				ID:    GlobalArchiveParamEntryID,
				State: models.ArchiveStatePreSeed,
			},
		}
		if dbErr = d.db.Create(&newEntry).Error; dbErr != nil {
			return ArchiveParamsDBEntry{}, fmt.Errorf(
				"failed to setup singleton archive params table [%w]", dbErr,
			)
		}
		return newEntry, nil
	}
	return entries[0], nil
}

/*
GetArchiveParamEntry fetch the global singleton archive parameter entry

	@param ctx context.Context - execution context
	@returns the entry
*/
func (d *databaseImpl) GetArchiveParamEntry(_ context.Context) (models.ArchiveParams, error) {
	entry, err := d.getArchiveParamEntry()
	if err != nil {
		return entry.ArchiveParams, fmt.Errorf("unable to fetch archive parameter entry [%w]", err)
	}
	return entry.ArchiveParams, nil
}

// updateArchiveParamState update the archive parameter entry with new state
func (d *databaseImpl) updateArchiveParamState(newState models.ArchiveStateENUMType) error {
	entry, err := d.getArchiveParamEntry()
	if err != nil {
		return fmt.Errorf("unable to fetch archive parameter entry [%w]", err)
	}

	if entry.State == newState {
		// NOOP
		return nil
	}

	if err := entry.ValidateNextState(newState); err != nil {
		return fmt.Errorf("archive state change to %s not allowed [%w]", newState, err)
	}

	oldState := entry.State
	entry.State = newState
	if tmp := d.db.Updates(&entry); tmp.Error != nil {
		return fmt.Errorf("archive state change update failed [%w]", tmp.Error)
	}

	// record this event
	switch newState {
	case models.ArchiveStateSeeding:
		_, err = d.defineNewArchiveEvent(models.ArchiveEventTypeSeeding, nil)
		if err != nil {
			return fmt.Errorf("failed to log archive state change audit event [%w]", err)
		}

	case models.ArchiveStateReady:
		if oldState == models.ArchiveStateSeeding {
			_, err = d.defineNewArchiveEvent(models.ArchiveEventTypeReady, nil)
			if err != nil {
				return fmt.Errorf("failed to log archive state change audit event [%w]", err)
			}
		}
	}

	return nil
}

/*
MarkArchiveSeeding mark archive is loading its sample documents

	@param ctx context.Context - execution context
*/
func (d *databaseImpl) MarkArchiveSeeding(_ context.Context) error {
	return d.updateArchiveParamState(models.ArchiveStateSeeding)
}

/*
MarkArchiveReady mark archive ready for use

	@param ctx context.Context - execution context
*/
func (d *databaseImpl) MarkArchiveReady(_ context.Context) error {
	return d.updateArchiveParamState(models.ArchiveStateReady)
}
