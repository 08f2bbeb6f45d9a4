package embedsimilarity

import (
	"testing"

	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

func TestEvaluateEmptyResumeOrJDGivesZeroScores(t *testing.T) {
	e := New(DefaultConfig())
	result, err := e.Evaluate(screenschema.CandidateProfile{}, core.Context{
		Job: screenschema.JobDescription{RequirementsText: []string{"Go backend engineer"}},
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["embed_sim"] != 0 || result.Scores["sim_title"] != 0 {
		t.Fatalf("Scores = %v, want zero for an empty candidate", result.Scores)
	}
}

func TestEvaluateIdenticalTextScoresHigh(t *testing.T) {
	e := New(DefaultConfig())
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Title: "Go backend engineer", Summary: "Go backend engineer building distributed systems"},
		},
	}
	job := screenschema.JobDescription{
		RequirementsText: []string{"Go backend engineer building distributed systems"},
	}

	result, err := e.Evaluate(candidate, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	// The summary is identical to the requirement (similarity 1.0); the
	// shorter title scores about 0.6134 against it. With only these two
	// evidence pairs (fewer than top_k = 3), embed_sim is their mean.
	pairs, ok := result.Metadata["evidence_pairs"].([]evidencePair)
	if !ok || len(pairs) != 2 {
		t.Fatalf("evidence_pairs = %v, want the 2 positive pairs", result.Metadata["evidence_pairs"])
	}
	if pairs[0].Similarity < 0.9999 {
		t.Fatalf("top evidence similarity = %v, want 1.0 for identical text", pairs[0].Similarity)
	}
	if result.Scores["embed_sim"] != 0.8067 {
		t.Fatalf("embed_sim = %v, want 0.8067 (mean of 1.0 and 0.6134)", result.Scores["embed_sim"])
	}
}

func TestEvaluateScoreIsBoundedByOne(t *testing.T) {
	e := New(DefaultConfig())
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Title: "Go backend engineer", Summary: "Go backend engineer building distributed systems"},
		},
	}
	job := screenschema.JobDescription{
		RequirementsText: []string{"Go backend engineer building distributed systems"},
	}
	result, err := e.Evaluate(candidate, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["embed_sim"] > 1.0001 {
		t.Fatalf("embed_sim = %v, want <= 1.0", result.Scores["embed_sim"])
	}
}

func TestEvaluateTopKLimitsEvidencePairs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopK = 1
	e := New(cfg)
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Summary: "Go backend engineer"},
			{Summary: "distributed systems engineer"},
		},
	}
	job := screenschema.JobDescription{
		RequirementsText: []string{"Go backend engineer", "distributed systems engineer"},
	}
	result, err := e.Evaluate(candidate, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	pairs, ok := result.Metadata["evidence_pairs"].([]evidencePair)
	if !ok {
		t.Fatalf("evidence_pairs has unexpected type %T", result.Metadata["evidence_pairs"])
	}
	if len(pairs) > 1 {
		t.Fatalf("len(evidence_pairs) = %d, want <= top_k (1)", len(pairs))
	}
}

func TestNewFallsBackToDefaultTopK(t *testing.T) {
	e := New(Config{TopK: 0})
	if e.config.TopK != DefaultConfig().TopK {
		t.Fatalf("TopK = %d, want default %d", e.config.TopK, DefaultConfig().TopK)
	}
}

func TestEvaluateNoRoleTitlesGivesZeroSimTitle(t *testing.T) {
	e := New(DefaultConfig())
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{{Title: "Go Engineer"}},
	}
	job := screenschema.JobDescription{RequirementsText: []string{"Go Engineer"}}
	result, err := e.Evaluate(candidate, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["sim_title"] != 0 {
		t.Fatalf("sim_title = %v, want 0 with no job role titles", result.Scores["sim_title"])
	}
}
