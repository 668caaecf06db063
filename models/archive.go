package models

import "time"

// PeriodENUMType archive folder granularity ENUM value type
type PeriodENUMType string

const (
	// PeriodYears one folder entry per calendar year with documents
	PeriodYears PeriodENUMType = "YEARS"
	// PeriodMonths one folder entry per month of the focus year
	PeriodMonths PeriodENUMType = "MONTHS"
	// PeriodDays one folder entry per day of the focus month
	PeriodDays PeriodENUMType = "DAYS"
	// PeriodDay one folder entry per (department, type) pair on the focus day
	PeriodDay PeriodENUMType = "DAY"
	// PeriodAll all four granularities accumulated into one answer
	PeriodAll PeriodENUMType = "ALL"
)

// ArchiveFolderEntry one node of the derived archive folder hierarchy.
//
// A synthetic summary value, never persisted. The timestamp is truncated to
// the granularity of the node (e.g. Jan 1 00:00 for a year node). Type and
// Dept are populated only on day-level leaf entries.
type ArchiveFolderEntry struct {
	// Timestamp node timestamp, truncated to the node granularity
	Timestamp time.Time `json:"timestamp"`
	// Type document kind code, leaf entries only
	Type string `json:"type,omitempty"`
	// Dept catering department, leaf entries only
	Dept string `json:"dept,omitempty"`
}
