package models

import "time"

// SearchCriteria the optional search parameters for selecting archived documents.
//
// Every field is optional; a nil field means "do not filter on this field",
// never "filter for absence". Date and time bounds are deliberately split into
// separate fields because the clients entering them cannot guarantee both are
// supplied together.
type SearchCriteria struct {
	// FromDate search start date
	FromDate *time.Time `json:"from_date,omitempty"`
	// FromTime search start time-of-day
	FromTime *time.Time `json:"from_time,omitempty"`
	// ToDate search end date
	ToDate *time.Time `json:"to_date,omitempty"`
	// ToTime search end time-of-day
	ToTime *time.Time `json:"to_time,omitempty"`

	// Type document kind code (SC1: - SC9:, OPN:, CLS:)
	Type *string `json:"type,omitempty"`
	// Dept catering department
	Dept *string `json:"dept,omitempty"`
	// Food food item or ingredient
	Food *string `json:"food,omitempty"`
	// Supplier stock supplier name
	Supplier *string `json:"supplier,omitempty"`
	// UseByDate use-by-date check result
	UseByDate *UseByDateCheckENUMType `json:"use_by_date,omitempty"`
	// SignOff supervisor who signed the document off
	SignOff *string `json:"sign_off,omitempty"`
}
