package importer

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobUploaded JobStatus = "uploaded"
	JobMapped   JobStatus = "mapped"
	JobApplied  JobStatus = "applied"
	JobFailed   JobStatus = "failed"
)

// Mapping declares which CSV header feeds each catalog field,
// e.g. {"sku": "Artikelnummer", "price": "Preis"}.
type Mapping map[string]string

// ImportJob tracks one partner CSV upload from raw bytes to applied summary.
type ImportJob struct {
	ID           uuid.UUID
	StoreID      uint
	Status       JobStatus
	Mapping      Mapping
	RawCSV       []byte
	CreatedCount int
	UpdatedCount int
	FailedCount  int
	RowErrors    []RowError
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RowError is one rejected CSV row. Row is 1-based and counts data rows,
// not the header line.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// maxRowErrors caps the persisted error list so a completely broken file
// cannot bloat the job record.
const maxRowErrors = 50
