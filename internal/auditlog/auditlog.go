// Package auditlog writes an append-only NDJSON record of every
// screening decision, one line per candidate, per spec.md §6. Each entry
// carries a google/uuid entry_id so audit lines can be correlated with
// runlog log lines emitted during the same run; the screening core never
// generates IDs itself — this is host bookkeeping only.
package auditlog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/learnbot/hrscreening/internal/core"
)

// Entry is one audit-log line.
type Entry struct {
	EntryID         string         `json:"entry_id"`
	CandidateID     string         `json:"candidate_id"`
	JobID           string         `json:"job_id"`
	PreLLMScore     float64        `json:"pre_llm_score"`
	Decision        core.Decision  `json:"decision"`
	HardGateFlags   map[string]bool `json:"hard_gate_flags"`
	HardGateDetails map[string]any `json:"hard_gate_details"`
	LLMPayload      map[string]any `json:"llm_payload,omitempty"`
	LLMResponse     json.RawMessage `json:"llm_response,omitempty"`
}

// Writer appends Entry records as NDJSON to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	enc *json.Encoder
}

// NewWriter wraps w as an audit-log sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, enc: json.NewEncoder(w)}
}

// Append writes one audit entry built from a screening outcome, the
// rerank payload sent (if any), and the rerank response received (if
// any). entryID is generated internally.
func (wr *Writer) Append(outcome core.ScreeningOutcome, llmPayload map[string]any, llmResponse json.RawMessage) error {
	entry := Entry{
		EntryID:         uuid.New().String(),
		CandidateID:     outcome.CandidateID,
		JobID:           outcome.JobID,
		PreLLMScore:     outcome.Aggregate.PreLLMScore,
		Decision:        outcome.Decision.Decision,
		HardGateFlags:   outcome.Decision.HardGateFlags,
		HardGateDetails: outcome.Decision.HardGateDetails,
		LLMPayload:      llmPayload,
		LLMResponse:     llmResponse,
	}
	if err := wr.enc.Encode(entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
