// Package ingest turns raw per-line candidate payloads into
// screenschema.CandidateProfile records via a registry of
// provider-specific adapters, mirroring spec.md §6's candidate input
// stream interface.
package ingest

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/learnbot/hrscreening/internal/screenschema"
)

// ErrUnknownProvider is returned when no registered adapter can handle a
// candidate payload; the caller skips the line and counts the error
// (spec.md §7.2).
var ErrUnknownProvider = errors.New("ingest: unknown provider")

// Adapter converts a single provider's payload shape into CandidateProfile.
type Adapter interface {
	Provider() string
	CanHandle(blob []byte, metadata map[string]any) bool
	SplitCandidates(text string) ([]string, error)
	ParseCandidate(section string) (screenschema.CandidateProfile, error)
}

// Registry holds an ordered list of adapters; the first CanHandle match
// wins.
type Registry struct {
	adapters []Adapter
}

// NewRegistry builds a Registry over an ordered adapter list.
func NewRegistry(adapters ...Adapter) *Registry {
	return &Registry{adapters: append([]Adapter(nil), adapters...)}
}

func (r *Registry) resolve(blob []byte, metadata map[string]any) (Adapter, bool) {
	for _, a := range r.adapters {
		if a.CanHandle(blob, metadata) {
			return a, true
		}
	}
	return nil, false
}

// Result is one line's ingestion outcome.
type Result struct {
	Candidate screenschema.CandidateProfile
	Err       error
}

// Reader streams NDJSON candidate lines, applying the registry to each,
// and yields one Result per line without buffering the whole stream.
type Reader struct {
	scanner  *bufio.Scanner
	registry *Registry
}

// NewReader wraps r as a line-oriented candidate stream.
func NewReader(r io.Reader, registry *Registry) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Reader{scanner: scanner, registry: registry}
}

// Next returns the next line's Result and true, or a zero Result and false
// at stream end.
func (rd *Reader) Next() (Result, bool) {
	for rd.scanner.Scan() {
		line := rd.scanner.Bytes()
		if len(bytesTrimSpace(line)) == 0 {
			continue
		}
		lineCopy := append([]byte(nil), line...)

		var metadata map[string]any
		_ = json.Unmarshal(lineCopy, &metadata)

		adapter, ok := rd.registry.resolve(lineCopy, metadata)
		if !ok {
			return Result{Err: fmt.Errorf("%w: %s", ErrUnknownProvider, providerHint(metadata))}, true
		}

		candidate, err := adapter.ParseCandidate(string(lineCopy))
		if err != nil {
			return Result{Err: fmt.Errorf("parse candidate: %w", err)}, true
		}
		if err := candidate.Validate(); err != nil {
			return Result{Err: fmt.Errorf("validate candidate: %w", err)}, true
		}
		return Result{Candidate: candidate}, true
	}
	return Result{}, false
}

// Err reports any non-EOF scanning error encountered by the underlying
// bufio.Scanner.
func (rd *Reader) Err() error {
	return rd.scanner.Err()
}

func providerHint(metadata map[string]any) string {
	if metadata == nil {
		return "<unparseable>"
	}
	if p, ok := metadata["provider"].(string); ok {
		return p
	}
	return "<unspecified>"
}

func bytesTrimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
