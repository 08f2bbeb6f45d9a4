package bm25proximity

import (
	"testing"

	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

func TestEvaluateNoDocumentsReturnsZeroScores(t *testing.T) {
	e := New(DefaultConfig())
	candidate := screenschema.CandidateProfile{}
	job := screenschema.JobDescription{RequirementsText: []string{"Go backend engineer"}}

	result, err := e.Evaluate(candidate, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["bm25_prox"] != 0 || result.Scores["title_bonus"] != 0 {
		t.Fatalf("Scores = %v, want zero scores for an empty candidate", result.Scores)
	}
}

func TestEvaluateScoresRelevantExperienceHigherThanUnrelated(t *testing.T) {
	e := New(DefaultConfig())
	job := screenschema.JobDescription{
		RequirementsText: []string{"Go backend engineer with distributed systems experience"},
	}

	relevant := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{
				Title:   "Go Backend Engineer",
				Summary: "Built distributed systems in Go for a backend engineer role",
				Bullets: []string{"Designed distributed backend services in Go"},
			},
		},
	}
	unrelated := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Title: "Pastry Chef", Summary: "Baked croissants", Bullets: []string{"Managed a kitchen"}},
		},
	}

	relevantResult, err := e.Evaluate(relevant, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	unrelatedResult, err := e.Evaluate(unrelated, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if relevantResult.Scores["bm25_prox"] <= unrelatedResult.Scores["bm25_prox"] {
		t.Fatalf("bm25_prox for relevant (%v) should exceed unrelated (%v)",
			relevantResult.Scores["bm25_prox"], unrelatedResult.Scores["bm25_prox"])
	}
}

func TestEvaluateTitleBonusRewardsFuzzyTitleMatch(t *testing.T) {
	e := New(DefaultConfig())
	job := screenschema.JobDescription{RoleTitles: []string{"Senior Go Engineer"}}
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{{Title: "Senior Go Engineer"}},
	}

	result, err := e.Evaluate(candidate, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["title_bonus"] <= 0 {
		t.Fatalf("title_bonus = %v, want > 0 for an exact title match", result.Scores["title_bonus"])
	}
}

func TestEvaluateNoRoleTitlesGivesZeroTitleBonus(t *testing.T) {
	e := New(DefaultConfig())
	job := screenschema.JobDescription{}
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{{Title: "Senior Go Engineer"}},
	}

	result, err := e.Evaluate(candidate, core.Context{Job: job})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["title_bonus"] != 0 {
		t.Fatalf("title_bonus = %v, want 0 with no job role titles", result.Scores["title_bonus"])
	}
}

func TestNewFallsBackToDefaultsOnZeroConfig(t *testing.T) {
	e := New(Config{})
	if e.config.K1 != DefaultConfig().K1 || e.config.B != DefaultConfig().B {
		t.Fatalf("New(Config{}) did not fall back to defaults: %+v", e.config)
	}
	if e.config.SectionWeights == nil || e.config.Synonyms == nil {
		t.Fatal("New(Config{}) left nil maps")
	}
}

func TestEvaluateResultAlwaysHasMethodAndScores(t *testing.T) {
	e := New(DefaultConfig())
	result, err := e.Evaluate(screenschema.CandidateProfile{}, core.Context{Job: screenschema.JobDescription{}})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Method != Method {
		t.Fatalf("Method = %q, want %q", result.Method, Method)
	}
	if result.Scores == nil {
		t.Fatal("Scores must never be nil (evaluator contract)")
	}
}
