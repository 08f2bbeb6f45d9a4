// Package bm25proximity implements the BM25Proximity evaluator
// (spec.md §4.2): classical BM25 over weighted resume-section documents,
// plus a proximity-window bonus, plus a fuzzy title-similarity bonus.
package bm25proximity

import (
	"math"
	"sort"

	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/fuzzy"
	"github.com/learnbot/hrscreening/internal/screenschema"
	"github.com/learnbot/hrscreening/internal/tokenizer"
)

const Method = "bm25_proximity"

// Config holds the tunable BM25 proximity parameters.
type Config struct {
	K1             float64            `yaml:"k1"`
	B              float64            `yaml:"b"`
	AlphaProximity float64            `yaml:"alpha_proximity"`
	Window         int                `yaml:"window"`
	SectionWeights map[string]float64 `yaml:"section_weights"`
	Synonyms       map[string][]string `yaml:"synonyms"`
}

// DefaultConfig returns fresh, independently-owned default parameters —
// every call allocates new maps so configs are never shared mutable state
// across Evaluator instances (spec.md §9 "Shared mutable defaults").
func DefaultConfig() Config {
	return Config{
		K1:             1.2,
		B:              0.75,
		AlphaProximity: 0.2,
		Window:         8,
		SectionWeights: map[string]float64{
			"title":   0.8,
			"summary": 0.6,
			"bullet":  1.0,
			"skills":  0.5,
		},
		Synonyms: map[string][]string{},
	}
}

// Evaluator is the BM25Proximity evaluator.
type Evaluator struct {
	config Config
}

// New builds an Evaluator; a zero-value Config falls back to DefaultConfig.
func New(config Config) *Evaluator {
	if config.SectionWeights == nil {
		config.SectionWeights = DefaultConfig().SectionWeights
	}
	if config.Synonyms == nil {
		config.Synonyms = map[string][]string{}
	}
	if config.K1 == 0 && config.B == 0 {
		def := DefaultConfig()
		config.K1, config.B, config.AlphaProximity, config.Window = def.K1, def.B, def.AlphaProximity, def.Window
	}
	return &Evaluator{config: config}
}

type document struct {
	text    string
	section string
	weight  float64
	tokens  []string
}

type hit struct {
	JDText        string  `json:"jd_text"`
	ResumeText    string  `json:"resume_text"`
	BM25          float64 `json:"bm25"`
	ProximityBonus float64 `json:"proximity_bonus"`
	Section       string  `json:"section"`
	Weight        float64 `json:"weight"`
}

// Evaluate implements core.Evaluator.
func (e *Evaluator) Evaluate(candidate screenschema.CandidateProfile, ctx core.Context) (core.EvaluationResult, error) {
	docs := e.buildDocuments(candidate)
	if len(docs) == 0 {
		return e.emptyResult(), nil
	}

	var totalLen int
	for _, d := range docs {
		totalLen += len(d.tokens)
	}
	avgDocLen := float64(totalLen) / float64(len(docs))
	idf := e.computeIDF(docs)

	var hits []hit
	var total float64

	for _, query := range e.buildQueries(ctx.Job) {
		queryTokens := e.expandTokens(tokenizer.Tokenize(query))
		if len(queryTokens) == 0 {
			continue
		}
		best, found := e.scoreQuery(query, queryTokens, docs, idf, avgDocLen)
		if !found {
			continue
		}
		hits = append(hits, best)
		total += best.BM25 + best.ProximityBonus
	}

	var bm25Score float64
	if len(hits) > 0 {
		bm25Score = total / float64(len(hits))
	}

	titleBonus := e.computeTitleBonus(candidate, ctx.Job)

	return core.EvaluationResult{
		Method: Method,
		Scores: map[string]float64{
			"bm25_prox":   bm25Score,
			"title_bonus": titleBonus,
		},
		Metadata: map[string]any{
			"k1":              e.config.K1,
			"b":               e.config.B,
			"alpha_proximity": e.config.AlphaProximity,
			"window":          e.config.Window,
			"hits":            hits,
		},
	}, nil
}

func (e *Evaluator) buildDocuments(candidate screenschema.CandidateProfile) []document {
	var docs []document
	addDoc := func(text, section string, weight float64) {
		if text == "" {
			return
		}
		tokens := tokenizer.Tokenize(text)
		if len(tokens) == 0 {
			return
		}
		docs = append(docs, document{text: text, section: section, weight: weight, tokens: tokens})
	}

	for _, exp := range candidate.Experiences {
		addDoc(exp.Title, "title", e.config.SectionWeights["title"])
		addDoc(exp.Summary, "summary", e.config.SectionWeights["summary"])
		for _, bullet := range exp.Bullets {
			addDoc(bullet, "bullet", e.config.SectionWeights["bullet"])
		}
	}
	if len(candidate.Skills) > 0 {
		joined := joinStrings(candidate.Skills, " ")
		addDoc(joined, "skills", e.config.SectionWeights["skills"])
	}
	return docs
}

func (e *Evaluator) buildQueries(job screenschema.JobDescription) []string {
	all := append([]string{}, job.RequirementsText...)
	all = append(all, job.KeyPhrases...)

	seen := make(map[string]bool)
	var unique []string
	for _, text := range all {
		key := tokenizer.Join(text)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, text)
	}
	return unique
}

func (e *Evaluator) expandTokens(tokens []string) []string {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	for _, t := range tokens {
		for _, alt := range e.config.Synonyms[t] {
			for _, expanded := range tokenizer.Tokenize(alt) {
				set[expanded] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (e *Evaluator) scoreQuery(
	queryText string,
	queryTokens []string,
	docs []document,
	idf map[string]float64,
	avgDocLen float64,
) (hit, bool) {
	var best hit
	bestScore := 0.0
	found := false

	for _, doc := range docs {
		bm25 := e.bm25Score(queryTokens, doc, idf, avgDocLen)
		if bm25 <= 0 {
			continue
		}
		proximity := e.proximityBonus(doc.tokens, queryTokens)
		weighted := (bm25 + proximity) * doc.weight
		if weighted > bestScore {
			bestScore = weighted
			best = hit{
				JDText:         queryText,
				ResumeText:     doc.text,
				BM25:           bm25,
				ProximityBonus: proximity,
				Section:        doc.section,
				Weight:         doc.weight,
			}
			found = true
		}
	}
	return best, found
}

func (e *Evaluator) bm25Score(queryTokens []string, doc document, idf map[string]float64, avgDocLen float64) float64 {
	docLen := float64(len(doc.tokens))
	var score float64
	for _, token := range queryTokens {
		freq := countToken(doc.tokens, token)
		if freq == 0 {
			continue
		}
		tokenIDF := idf[token]
		denom := float64(freq) + e.config.K1*(1-e.config.B+e.config.B*(docLen/avgDocLen))
		score += tokenIDF * (float64(freq) * (e.config.K1 + 1)) / denom
	}
	return score
}

func (e *Evaluator) proximityBonus(docTokens, queryTokens []string) float64 {
	if len(queryTokens) <= 1 {
		return 0
	}
	positions := make(map[string][]int, len(queryTokens))
	unique := make(map[string]bool, len(queryTokens))
	for _, t := range queryTokens {
		unique[t] = true
	}
	for t := range unique {
		positions[t] = nil
	}
	for idx, tok := range docTokens {
		if _, ok := positions[tok]; ok {
			positions[tok] = append(positions[tok], idx)
		}
	}
	for _, pos := range positions {
		if len(pos) == 0 {
			return 0
		}
	}

	minSpan := math.MaxInt64
	for _, startPositions := range positions {
		for _, startIdx := range startPositions {
			maxIdx := startIdx
			for _, tokenPositions := range positions {
				best := nearest(tokenPositions, startIdx)
				if best > maxIdx {
					maxIdx = best
				}
			}
			span := maxIdx - startIdx + 1
			if span < minSpan {
				minSpan = span
			}
		}
	}
	if minSpan == math.MaxInt64 {
		return 0
	}
	if minSpan <= e.config.Window {
		return e.config.AlphaProximity / float64(1+minSpan)
	}
	return 0
}

func nearest(positions []int, target int) int {
	best := positions[0]
	bestDist := abs(best - target)
	for _, p := range positions[1:] {
		if d := abs(p - target); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

func (e *Evaluator) computeIDF(docs []document) map[string]float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range doc.tokens {
			if !seen[tok] {
				df[tok]++
				seen[tok] = true
			}
		}
	}
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for tok, freq := range df {
		idf[tok] = math.Log(1 + (n-float64(freq)+0.5)/(float64(freq)+0.5))
	}
	return idf
}

func (e *Evaluator) computeTitleBonus(candidate screenschema.CandidateProfile, job screenschema.JobDescription) float64 {
	if len(job.RoleTitles) == 0 {
		return 0
	}
	var candidateTitles []string
	for _, exp := range candidate.Experiences {
		if exp.Title != "" {
			candidateTitles = append(candidateTitles, exp.Title)
		}
	}
	if len(candidateTitles) == 0 {
		return 0
	}
	best := 0.0
	for _, jobTitle := range job.RoleTitles {
		for _, candidateTitle := range candidateTitles {
			ratio := fuzzy.TokenSetRatio(jobTitle, candidateTitle) / 100.0
			if ratio > best {
				best = ratio
			}
		}
	}
	return roundTo4(best * 0.2)
}

func (e *Evaluator) emptyResult() core.EvaluationResult {
	return core.EvaluationResult{
		Method: Method,
		Scores: map[string]float64{"bm25_prox": 0, "title_bonus": 0},
		Metadata: map[string]any{
			"k1":              e.config.K1,
			"b":               e.config.B,
			"alpha_proximity": e.config.AlphaProximity,
			"window":          e.config.Window,
			"hits":            []hit{},
		},
	}
}

func countToken(tokens []string, target string) int {
	n := 0
	for _, t := range tokens {
		if t == target {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func roundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func joinStrings(items []string, sep string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += sep
		}
		out += item
	}
	return out
}
