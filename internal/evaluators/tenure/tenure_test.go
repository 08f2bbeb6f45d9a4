package tenure

import (
	"testing"
	"time"

	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

func fixedNow(year int, month time.Month) NowFunc {
	return func() time.Time { return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC) }
}

func strp(s string) *string { return &s }

func TestEvaluateStableTenurePasses(t *testing.T) {
	e := New(DefaultConfig(), fixedNow(2024, time.January))
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Company: "Acme", Start: strp("2018-01"), End: strp("2023-01")},
		},
	}

	result, err := e.Evaluate(candidate, core.Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["tenure_pass"] != 1.0 {
		t.Fatalf("tenure_pass = %v, want 1.0 for a 5-year stint", result.Scores["tenure_pass"])
	}
	if result.Scores["tenure_avg_months"] != 60 {
		t.Fatalf("tenure_avg_months = %v, want 60", result.Scores["tenure_avg_months"])
	}
}

func TestEvaluateJobHopperFails(t *testing.T) {
	e := New(DefaultConfig(), fixedNow(2024, time.January))
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Company: "A", Start: strp("2023-01"), End: strp("2023-04")},
			{Company: "B", Start: strp("2022-06"), End: strp("2022-09")},
			{Company: "C", Start: strp("2021-01"), End: strp("2021-04")},
		},
	}

	result, err := e.Evaluate(candidate, core.Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["tenure_pass"] != 0 {
		t.Fatalf("tenure_pass = %v, want 0 for a job hopper", result.Scores["tenure_pass"])
	}
}

func TestEvaluateContractorProfileRelaxesJobHopperRule(t *testing.T) {
	// Two recent short contract stints (3 months each) would normally trip
	// the job-hopper rule, but a long-running third contract stint pulls
	// the contract-only average to 15 months — above the 12-month
	// contractor threshold — so the relaxation rule lets it pass.
	e := New(DefaultConfig(), fixedNow(2024, time.January))
	contractType := "contract"
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Company: "A", Start: strp("2023-07"), End: strp("2023-10"), EmploymentType: &contractType},
			{Company: "B", Start: strp("2022-12"), End: strp("2023-03"), EmploymentType: &contractType},
			{Company: "C", Start: strp("2018-10"), End: strp("2022-01"), EmploymentType: &contractType},
		},
	}

	result, err := e.Evaluate(candidate, core.Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["tenure_pass"] != 1.0 {
		t.Fatalf("tenure_pass = %v, want 1.0 for an all-contract profile clearing the contractor threshold", result.Scores["tenure_pass"])
	}
}

func TestEvaluateOngoingExperienceUsesAsOf(t *testing.T) {
	e := New(DefaultConfig(), fixedNow(2020, time.January))
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Company: "Acme", Start: strp("2018-01")},
		},
	}
	asOf := "2023-01"

	result, err := e.Evaluate(candidate, core.Context{AsOf: &asOf})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["tenure_avg_months"] != 60 {
		t.Fatalf("tenure_avg_months = %v, want 60 using ctx.AsOf instead of the injected now", result.Scores["tenure_avg_months"])
	}
}

func TestEvaluateUnparseableStartIsDiscarded(t *testing.T) {
	e := New(DefaultConfig(), fixedNow(2024, time.January))
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Company: "Acme", Start: nil, End: strp("2023-01")},
		},
	}

	result, err := e.Evaluate(candidate, core.Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["tenure_avg_months"] != 0 {
		t.Fatalf("tenure_avg_months = %v, want 0 when no experience has a parseable start date", result.Scores["tenure_avg_months"])
	}
	if result.Scores["tenure_pass"] != 1.0 {
		t.Fatalf("tenure_pass = %v, want 1.0 (vacuous pass with no usable experience)", result.Scores["tenure_pass"])
	}
}

func TestEvaluateEndBeforeStartIsDiscarded(t *testing.T) {
	e := New(DefaultConfig(), fixedNow(2024, time.January))
	candidate := screenschema.CandidateProfile{
		Experiences: []screenschema.ExperienceEntry{
			{Company: "Acme", Start: strp("2023-01"), End: strp("2020-01")},
		},
	}

	result, err := e.Evaluate(candidate, core.Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Scores["tenure_avg_months"] != 0 {
		t.Fatalf("tenure_avg_months = %v, want 0 when End precedes Start", result.Scores["tenure_avg_months"])
	}
}

func TestNewFallsBackToDefaults(t *testing.T) {
	e := New(Config{}, nil)
	if e.config.AverageThresholdMonths != DefaultConfig().AverageThresholdMonths {
		t.Fatalf("AverageThresholdMonths = %v, want default", e.config.AverageThresholdMonths)
	}
	if e.now == nil {
		t.Fatal("now func must fall back to time.Now, got nil")
	}
}
