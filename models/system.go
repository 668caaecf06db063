package models

import (
	"fmt"
	"time"
)

// ArchiveStateENUMType archive operating state ENUM
type ArchiveStateENUMType string

const (
	// ArchiveStatePreSeed first time archive start, sample documents not yet loaded
	ArchiveStatePreSeed ArchiveStateENUMType = "PRE_SEED"
	// ArchiveStateSeeding archive loading the sample documents
	ArchiveStateSeeding ArchiveStateENUMType = "SEEDING"
	// ArchiveStateReady archive running normally
	ArchiveStateReady ArchiveStateENUMType = "READY"
)

// ArchiveParams archive operating parameters
type ArchiveParams struct {
	// ID param entry ID. It must always be archive-parameters
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required,oneof=archive-parameters"`

	// State archive operating state
	State ArchiveStateENUMType `json:"state" gorm:"column:state;not null" validate:"required,archive_state"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateNextState verify can transition to new state
func (p *ArchiveParams) ValidateNextState(newState ArchiveStateENUMType) error {
	statesWithTransitions := map[ArchiveStateENUMType]map[ArchiveStateENUMType]bool{
		ArchiveStatePreSeed: {
			ArchiveStatePreSeed: true,
			ArchiveStateSeeding: true,
			ArchiveStateReady:   true,
		},
		ArchiveStateSeeding: {
			ArchiveStateSeeding: true,
			ArchiveStateReady:   true,
		},
		ArchiveStateReady: {
			ArchiveStateReady: true,
		},
	}

	availableNextStates, ok := statesWithTransitions[p.State]
	if !ok {
		return fmt.Errorf("archive can't transition out of state '%s'", p.State)
	}

	if _, ok := availableNextStates[newState]; !ok {
		return fmt.Errorf("archive can't transition from '%s' to '%s'", p.State, newState)
	}

	return nil
}
