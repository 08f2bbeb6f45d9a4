package core

import (
	"reflect"
	"sort"

	"github.com/learnbot/hrscreening/internal/screenschema"
)

// BuildRerankPayload is a pure projection (spec.md §4.8) extracting the
// BM25 and embedding evaluations (if present) from a ScreeningOutcome into
// the shape expected by an external LLM reranker. It performs no I/O —
// posting the payload is internal/rerank's job.
func BuildRerankPayload(job screenschema.JobDescription, candidate screenschema.CandidateProfile, outcome ScreeningOutcome) map[string]any {
	bm25 := findEvaluation(outcome, "bm25_proximity")
	embed := findEvaluation(outcome, "embed_similarity")

	requirementsTop := job.RequirementsText
	if len(requirementsTop) > 5 {
		requirementsTop = requirementsTop[:5]
	}

	var titles []string
	for _, exp := range candidate.Experiences {
		if exp.Title != "" {
			titles = append(titles, exp.Title)
		}
	}

	skillsAggTop := skillsAggTop5(candidate.SkillsAgg)

	return map[string]any{
		"job_id":       job.JobID,
		"candidate_id": candidate.CandidateID,
		"jd": map[string]any{
			"role_titles":      job.RoleTitles,
			"requirements_top": requirementsTop,
			"constraints":      job.Constraints,
		},
		"candidate_summary": map[string]any{
			"titles":         titles,
			"skills_agg_top": skillsAggTop,
		},
		"method1_bm25":  extractBM25Metadata(bm25),
		"method2_embed": extractEmbedMetadata(embed),
		"pre_llm_score": outcome.Aggregate.PreLLMScore,
		"penalties":     outcome.Decision.HardGateFlags,
	}
}

func findEvaluation(outcome ScreeningOutcome, method string) *EvaluationResult {
	for i := range outcome.Evaluations {
		if outcome.Evaluations[i].Method == method {
			return &outcome.Evaluations[i]
		}
	}
	return nil
}

func extractBM25Metadata(result *EvaluationResult) map[string]any {
	if result == nil {
		return map[string]any{}
	}
	return map[string]any{
		"bm25_prox":   result.Scores["bm25_prox"],
		"title_bonus": result.Scores["title_bonus"],
		"hits_top":    firstN(result.Metadata["hits"], 3),
	}
}

// firstN truncates any concrete slice type to its first n elements via
// reflection, since evaluator metadata stores typed slices (e.g. []hit),
// not []any.
func firstN(v any, n int) any {
	if v == nil {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Len() <= n {
		return v
	}
	return rv.Slice(0, n).Interface()
}

func extractEmbedMetadata(result *EvaluationResult) map[string]any {
	if result == nil {
		return map[string]any{}
	}
	return map[string]any{
		"embed_sim":          result.Scores["embed_sim"],
		"sim_title":          result.Scores["sim_title"],
		"evidence_pairs_top": firstN(result.Metadata["evidence_pairs"], 3),
	}
}

// skillsAggTop5 returns the five skills with the highest aggregated years of
// experience, deterministically: ties break on ascending skill name so two
// runs over the same SkillsAgg always produce the same order, independent of
// Go's randomized map iteration.
func skillsAggTop5(agg map[string]screenschema.SkillAggregate) []map[string]any {
	names := make([]string, 0, len(agg))
	for name := range agg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		yi, yj := agg[names[i]].Years, agg[names[j]].Years
		switch {
		case yi == nil && yj == nil:
			return names[i] < names[j]
		case yi == nil:
			return false
		case yj == nil:
			return true
		case *yi != *yj:
			return *yi > *yj
		default:
			return names[i] < names[j]
		}
	})

	if len(names) > 5 {
		names = names[:5]
	}

	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		data := agg[name]
		out = append(out, map[string]any{"name": name, "years": data.Years, "last_used": data.LastUsed})
	}
	return out
}
