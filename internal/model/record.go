package model

// Package model contains the portfolio domain records. These are pure domain
// types with no database-specific dependencies or tags; rows are stored as
// JSON documents, so the json tags double as the storage field names.

// Record is implemented by every stored portfolio record.
type Record interface {
	// RecordID returns the system-assigned identifier. It is empty until the
	// record has been created.
	RecordID() string
	// SetRecordID assigns the identifier. Identifiers are immutable after
	// creation; callers use this only when creating a record or to restore
	// the stored identifier after a partial merge.
	SetRecordID(id string)
	// Validate reports whether the record satisfies its required-field set.
	Validate() error
}

// RecordOf constrains a pointer to a record value, so generic services can
// allocate and mutate records without reflection.
type RecordOf[T any] interface {
	*T
	Record
}
