// Package assemble builds the final output document (spec.md §6):
// per-candidate screening outcomes plus a metadata envelope, ready for
// encoding/json to serialize.
package assemble

import (
	"time"

	"github.com/google/uuid"

	"github.com/learnbot/hrscreening/internal/core"
)

// Metadata is the output document's envelope.
type Metadata struct {
	JobID          string `json:"job_id"`
	CandidateCount int    `json:"candidate_count"`
	Errors         int    `json:"errors"`
	Timestamp      string `json:"timestamp"`
	AppVersion     string `json:"app_version"`
	RequestID      string `json:"request_id"`
}

// Document is the complete output document.
type Document struct {
	Metadata Metadata              `json:"metadata"`
	Results  []core.ScreeningOutcome `json:"results"`
}

// Build assembles a Document. now is the wall-clock time to stamp, so
// callers can inject a deterministic clock in tests.
func Build(jobID string, results []core.ScreeningOutcome, errorCount int, appVersion string, now time.Time) Document {
	return Document{
		Metadata: Metadata{
			JobID:          jobID,
			CandidateCount: len(results),
			Errors:         errorCount,
			Timestamp:      now.UTC().Format(time.RFC3339),
			AppVersion:     appVersion,
			RequestID:      uuid.New().String(),
		},
		Results: results,
	}
}
