package core

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/learnbot/hrscreening/internal/screenschema"
)

type stubEvaluator struct {
	method string
	scores map[string]float64
	err    error
}

func (s stubEvaluator) Evaluate(screenschema.CandidateProfile, Context) (EvaluationResult, error) {
	if s.err != nil {
		return EvaluationResult{}, s.err
	}
	return EvaluationResult{Method: s.method, Scores: s.scores}, nil
}

func intp(v int) *int { return &v }

func TestEvaluatePreLLMScoreIsOrderIndependent(t *testing.T) {
	a := stubEvaluator{method: "a", scores: map[string]float64{"bm25_prox": 0.5}}
	b := stubEvaluator{method: "b", scores: map[string]float64{"embed_sim": 0.8}}

	forward := New([]Evaluator{a, b})
	backward := New([]Evaluator{b, a})

	outForward, err := forward.Evaluate(screenschema.CandidateProfile{}, screenschema.JobDescription{}, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	outBackward, err := backward.Evaluate(screenschema.CandidateProfile{}, screenschema.JobDescription{}, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if outForward.Aggregate.PreLLMScore != outBackward.Aggregate.PreLLMScore {
		t.Fatalf("PreLLMScore depends on evaluator order: %v vs %v",
			outForward.Aggregate.PreLLMScore, outBackward.Aggregate.PreLLMScore)
	}
}

func TestEvaluateHardGateFailureForcesReject(t *testing.T) {
	highScorer := stubEvaluator{method: "all", scores: map[string]float64{
		"bm25_prox": 1, "embed_sim": 1, "sim_title": 1, "title_bonus": 1,
	}}
	core := New([]Evaluator{highScorer})

	visa := "visa_sponsorship"
	job := screenschema.JobDescription{Constraints: screenschema.JobConstraints{Visa: &visa}}
	candidate := screenschema.CandidateProfile{} // no constraints -> visa gate fails

	outcome, err := core.Evaluate(candidate, job, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if outcome.Decision.Decision != DecisionReject {
		t.Fatalf("Decision = %v, want reject on hard gate failure even with a perfect score", outcome.Decision.Decision)
	}
	if len(outcome.Decision.HardFailures) == 0 {
		t.Fatal("expected at least one hard failure label")
	}
}

func TestEvaluatePassRequiresScoreAboveThresholdAndNoHardFailures(t *testing.T) {
	highScorer := stubEvaluator{method: "all", scores: map[string]float64{
		"bm25_prox": 1, "embed_sim": 1, "sim_title": 1, "title_bonus": 1,
	}}
	core := New([]Evaluator{highScorer})

	outcome, err := core.Evaluate(screenschema.CandidateProfile{}, screenschema.JobDescription{}, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if outcome.Decision.Decision != DecisionPass {
		t.Fatalf("Decision = %v, want pass for a perfect score with no constraints", outcome.Decision.Decision)
	}
	if len(outcome.Decision.HardFailures) != 0 {
		t.Fatalf("HardFailures = %v, want empty on pass", outcome.Decision.HardFailures)
	}
	if outcome.Aggregate.PreLLMScore < DefaultThresholds().Pass {
		t.Fatalf("PreLLMScore = %v, want >= pass threshold %v", outcome.Aggregate.PreLLMScore, DefaultThresholds().Pass)
	}
}

func TestGateLabelSetIsExactlyFour(t *testing.T) {
	want := []string{"language", "location", "salary", "visa"}
	var got []string
	for _, label := range gateLabel {
		got = append(got, label)
	}
	sort.Strings(got)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("gate label set = %v, want %v", got, want)
	}
}

func TestEvaluateEvaluatorContractErrorOnEmptyMethod(t *testing.T) {
	core := New([]Evaluator{stubEvaluator{method: "", scores: map[string]float64{"x": 1}}})
	_, err := core.Evaluate(screenschema.CandidateProfile{}, screenschema.JobDescription{}, Context{})
	if !errors.Is(err, ErrEvaluatorContract) {
		t.Fatalf("err = %v, want ErrEvaluatorContract", err)
	}
}

func TestEvaluateEvaluatorContractErrorOnNilScores(t *testing.T) {
	core := New([]Evaluator{stubEvaluator{method: "m", scores: nil}})
	_, err := core.Evaluate(screenschema.CandidateProfile{}, screenschema.JobDescription{}, Context{})
	if !errors.Is(err, ErrEvaluatorContract) {
		t.Fatalf("err = %v, want ErrEvaluatorContract", err)
	}
}

func TestEvaluatePropagatesEvaluatorError(t *testing.T) {
	boom := errors.New("boom")
	core := New([]Evaluator{stubEvaluator{err: boom}})
	_, err := core.Evaluate(screenschema.CandidateProfile{}, screenschema.JobDescription{}, Context{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestEvaluateLanguageGateMatchesAlias(t *testing.T) {
	core := New([]Evaluator{stubEvaluator{method: "m", scores: map[string]float64{}}})
	job := screenschema.JobDescription{Constraints: screenschema.JobConstraints{Language: []string{"Japanese"}}}
	candidate := screenschema.CandidateProfile{Languages: []screenschema.LanguageProficiency{{Language: "日本語"}}}

	outcome, err := core.Evaluate(candidate, job, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	for _, failure := range outcome.Decision.HardFailures {
		if failure == "language" {
			t.Fatal("expected the language gate to pass via alias matching (Japanese == 日本語)")
		}
	}
}

func TestEvaluateSalaryGateAboveRequiredMaxFails(t *testing.T) {
	core := New([]Evaluator{stubEvaluator{method: "m", scores: map[string]float64{}}})
	job := screenschema.JobDescription{
		Constraints: screenschema.JobConstraints{
			SalaryRange: &screenschema.SalaryRange{MinJPY: intp(4000000), MaxJPY: intp(5000000)},
		},
	}
	candidate := screenschema.CandidateProfile{DesiredSalaryMinJPY: intp(9000000)}

	outcome, err := core.Evaluate(candidate, job, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	found := false
	for _, failure := range outcome.Decision.HardFailures {
		if failure == "salary" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a salary hard failure when desired min exceeds the required max")
	}
}

func TestEvaluateSalaryGateInsufficientDataDoesNotBlock(t *testing.T) {
	core := New([]Evaluator{stubEvaluator{method: "m", scores: map[string]float64{}}})
	job := screenschema.JobDescription{
		Constraints: screenschema.JobConstraints{
			SalaryRange: &screenschema.SalaryRange{MinJPY: intp(4000000), MaxJPY: intp(5000000)},
		},
	}
	outcome, err := core.Evaluate(screenschema.CandidateProfile{}, job, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	for _, failure := range outcome.Decision.HardFailures {
		if failure == "salary" {
			t.Fatal("expected insufficient candidate salary data to not block (defaults to ok)")
		}
	}
}

func TestEvaluateMergesJobAndCallerOverridesCallerWins(t *testing.T) {
	var captured Context
	capturing := evaluatorFunc(func(_ screenschema.CandidateProfile, ctx Context) (EvaluationResult, error) {
		captured = ctx
		return EvaluationResult{Method: "m", Scores: map[string]float64{}}, nil
	})
	core := New([]Evaluator{capturing})

	job := screenschema.JobDescription{EvaluationOverrides: map[string]any{"shared": "job", "jobOnly": 1}}
	callerOverrides := map[string]any{"shared": "caller", "callerOnly": 2}

	_, err := core.Evaluate(screenschema.CandidateProfile{}, job, Context{EvaluationOverrides: callerOverrides})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if captured.EvaluationOverrides["shared"] != "caller" {
		t.Fatalf("shared override = %v, want caller to win on collision", captured.EvaluationOverrides["shared"])
	}
	if captured.EvaluationOverrides["jobOnly"] != 1 {
		t.Fatal("expected job-only override to survive the merge")
	}
	if captured.EvaluationOverrides["callerOnly"] != 2 {
		t.Fatal("expected caller-only override to survive the merge")
	}
}

type evaluatorFunc func(screenschema.CandidateProfile, Context) (EvaluationResult, error)

func (f evaluatorFunc) Evaluate(c screenschema.CandidateProfile, ctx Context) (EvaluationResult, error) {
	return f(c, ctx)
}

func TestWithWeightsNilIsIgnored(t *testing.T) {
	core := New(nil, WithWeights(nil))
	if !reflect.DeepEqual(core.weights, DefaultWeights()) {
		t.Fatalf("weights = %v, want untouched defaults when WithWeights(nil) is applied", core.weights)
	}
}

func TestCandidateIDAndJobIDPassThrough(t *testing.T) {
	core := New([]Evaluator{stubEvaluator{method: "m", scores: map[string]float64{}}})
	candidate := screenschema.CandidateProfile{CandidateID: "c-42"}
	job := screenschema.JobDescription{JobID: "j-7"}

	outcome, err := core.Evaluate(candidate, job, Context{})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if outcome.CandidateID != "c-42" || outcome.JobID != "j-7" {
		t.Fatalf("CandidateID/JobID = %q/%q, want c-42/j-7", outcome.CandidateID, outcome.JobID)
	}
}
