package models

import "time"

// UseByDateCheckENUMType use-by-date check result ENUM value type
type UseByDateCheckENUMType string

const (
	// UseByDateNotApplicable no use-by-date check applies to the document
	UseByDateNotApplicable UseByDateCheckENUMType = "NOT_APPLICABLE"

	// UseByDateChecked the use-by-date was checked and found OK
	UseByDateChecked UseByDateCheckENUMType = "CHECKED"

	// UseByDateExpired the use-by-date was checked and found expired
	UseByDateExpired UseByDateCheckENUMType = "EXPIRED"
)

// ArchiveRecord one archived food-safety inspection document.
//
// The archive holds the monitoring documents catering businesses retain as a
// record of food hygiene compliance. Every document carries a transaction
// timestamp, a document kind, and the catering department it came from.
type ArchiveRecord struct {
	// ID record ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required,uuid_rfc4122"`

	// Timestamp document transaction date/time; the primary ordering key of the archive
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;not null;index" validate:"required"`

	// Type document kind code
	Type string `json:"type" gorm:"column:type;not null;index" validate:"required,document_kind"`

	// Dept catering department the document came from
	Dept string `json:"dept" gorm:"column:dept;not null;index" validate:"required"`

	// Food food item or ingredient
	Food string `json:"food,omitempty" gorm:"column:food"`
	// Supplier stock supplier name
	Supplier string `json:"supplier,omitempty" gorm:"column:supplier"`

	// UseByDate use-by-date check result
	UseByDate UseByDateCheckENUMType `json:"use_by_date" gorm:"column:use_by_date;not null" validate:"required,use_by_check"`

	// Temperature recorded food temperature in Celsius
	Temperature float64 `json:"temperature,omitempty" gorm:"column:temperature"`

	// Comment general comment
	Comment string `json:"comment,omitempty" gorm:"column:comment"`

	// Sign staff signature on the document
	Sign string `json:"sign,omitempty" gorm:"column:sign"`
	// SignOff supervisor sign-off of the completed document
	SignOff string `json:"sign_off,omitempty" gorm:"column:sign_off"`
	// CheckDate date/time the supervisor signed the document off
	CheckDate *time.Time `json:"check_date,omitempty" gorm:"column:check_date;default:null"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

// ArchiveRecordSummary minimal projection of an archived document.
//
// Used by the archive browsing path to scaffold the folder hierarchy without
// transferring full document bodies.
type ArchiveRecordSummary struct {
	// ID record ID
	ID string `json:"id"`
	// Timestamp document transaction date/time
	Timestamp time.Time `json:"timestamp"`
	// Type document kind code
	Type string `json:"type"`
	// Dept catering department
	Dept string `json:"dept"`
}

// Summarize project the record down to its summary form
func (r ArchiveRecord) Summarize() ArchiveRecordSummary {
	return ArchiveRecordSummary{ID: r.ID, Timestamp: r.Timestamp, Type: r.Type, Dept: r.Dept}
}
