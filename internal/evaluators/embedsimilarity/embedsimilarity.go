// Package embedsimilarity implements the EmbeddingSimilarity evaluator
// (spec.md §4.3): a deterministic TF-IDF cosine approximation standing in
// for a real embedding model, with synonym-augmented text on both sides.
package embedsimilarity

import (
	"math"
	"sort"

	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/screenschema"
	"github.com/learnbot/hrscreening/internal/tokenizer"
)

const Method = "embed_similarity"

// Config holds the tunable embedding-similarity parameters.
type Config struct {
	TopK     int                 `yaml:"top_k"`
	Synonyms map[string][]string `yaml:"synonyms"`
}

// DefaultConfig returns fresh, independently-owned default parameters.
func DefaultConfig() Config {
	return Config{TopK: 3, Synonyms: map[string][]string{}}
}

// Evaluator is the EmbeddingSimilarity evaluator.
type Evaluator struct {
	config Config
}

// New builds an Evaluator; a zero-value Config falls back to DefaultConfig.
func New(config Config) *Evaluator {
	if config.Synonyms == nil {
		config.Synonyms = map[string][]string{}
	}
	if config.TopK <= 0 {
		config.TopK = DefaultConfig().TopK
	}
	return &Evaluator{config: config}
}

type entry struct {
	text   string
	vector map[string]float64
}

type evidencePair struct {
	JDText     string  `json:"jd_text"`
	ResumeText string  `json:"resume_text"`
	Similarity float64 `json:"similarity"`
}

// Evaluate implements core.Evaluator.
func (e *Evaluator) Evaluate(candidate screenschema.CandidateProfile, ctx core.Context) (core.EvaluationResult, error) {
	resumeTexts := e.resumeTexts(candidate)
	jdTexts := ctx.Job.RequirementsText

	if len(resumeTexts) == 0 || len(jdTexts) == 0 {
		return e.emptyResult(), nil
	}

	idf := e.computeIDF(resumeTexts, jdTexts)
	resumeEntries := e.vectorize(resumeTexts, idf)
	jdEntries := e.vectorize(jdTexts, idf)

	var evidence []evidencePair
	for _, jd := range jdEntries {
		for _, resume := range resumeEntries {
			sim := cosineSimilarity(jd.vector, resume.vector)
			if sim > 0 {
				evidence = append(evidence, evidencePair{JDText: jd.text, ResumeText: resume.text, Similarity: sim})
			}
		}
	}
	sort.SliceStable(evidence, func(i, j int) bool { return evidence[i].Similarity > evidence[j].Similarity })

	topK := evidence
	if len(topK) > e.config.TopK {
		topK = topK[:e.config.TopK]
	}

	var embedSim float64
	if len(topK) > 0 {
		var total float64
		for _, pair := range topK {
			total += pair.Similarity
		}
		embedSim = roundTo4(total / float64(len(topK)))
	}

	simTitle := e.titleSimilarity(candidate, ctx.Job, idf)

	return core.EvaluationResult{
		Method: Method,
		Scores: map[string]float64{
			"embed_sim": embedSim,
			"sim_title": simTitle,
		},
		Metadata: map[string]any{
			"model":          "tfidf-cosine-lite",
			"top_k":          e.config.TopK,
			"evidence_pairs": topK,
		},
	}, nil
}

// resumeTexts collects candidate entries from every experience's title,
// summary, and each bullet (spec.md §4.3).
func (e *Evaluator) resumeTexts(candidate screenschema.CandidateProfile) []string {
	var texts []string
	for _, exp := range candidate.Experiences {
		if exp.Title != "" {
			texts = append(texts, exp.Title)
		}
		if exp.Summary != "" {
			texts = append(texts, exp.Summary)
		}
		for _, bullet := range exp.Bullets {
			if bullet != "" {
				texts = append(texts, bullet)
			}
		}
	}
	return texts
}

func (e *Evaluator) augment(text string) []string {
	tokens := tokenizer.Tokenize(text)
	seen := make(map[string]bool, len(tokens))
	augmented := make([]string, 0, len(tokens))
	add := func(tok string) {
		if !seen[tok] {
			seen[tok] = true
			augmented = append(augmented, tok)
		}
	}
	for _, t := range tokens {
		add(t)
	}
	for _, t := range tokens {
		for _, alt := range e.config.Synonyms[t] {
			for _, expanded := range tokenizer.Tokenize(alt) {
				add(expanded)
			}
		}
	}
	return augmented
}

func (e *Evaluator) computeIDF(resumeTexts, jdTexts []string) map[string]float64 {
	df := make(map[string]int)
	n := len(resumeTexts) + len(jdTexts)
	for _, text := range append(append([]string{}, resumeTexts...), jdTexts...) {
		for _, tok := range toSet(e.augment(text)) {
			df[tok]++
		}
	}
	idf := make(map[string]float64, len(df))
	for tok, freq := range df {
		idf[tok] = math.Log(float64(1+n)/float64(1+freq)) + 1
	}
	return idf
}

func toSet(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var out []string
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func (e *Evaluator) vectorize(texts []string, idf map[string]float64) []entry {
	entries := make([]entry, 0, len(texts))
	for _, text := range texts {
		entries = append(entries, entry{text: text, vector: e.tfidfVector(e.augment(text), idf)})
	}
	return entries
}

func (e *Evaluator) tfidfVector(tokens []string, idf map[string]float64) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	vec := make(map[string]float64, len(tf))
	for tok, freq := range tf {
		vec[tok] = (float64(freq) / float64(len(tokens))) * idf[tok]
	}
	return vec
}

func cosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for tok, va := range a {
		normA += va * va
		if vb, ok := b[tok]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func (e *Evaluator) titleSimilarity(candidate screenschema.CandidateProfile, job screenschema.JobDescription, idf map[string]float64) float64 {
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
		jobVec := e.tfidfVector(e.augment(jobTitle), idf)
		for _, candidateTitle := range candidateTitles {
			candVec := e.tfidfVector(e.augment(candidateTitle), idf)
			sim := cosineSimilarity(jobVec, candVec)
			if sim > best {
				best = sim
			}
		}
	}
	return best
}

func (e *Evaluator) emptyResult() core.EvaluationResult {
	return core.EvaluationResult{
		Method: Method,
		Scores: map[string]float64{"embed_sim": 0, "sim_title": 0},
		Metadata: map[string]any{
			"model":          "tfidf-cosine-lite",
			"top_k":          e.config.TopK,
			"evidence_pairs": []evidencePair{},
		},
	}
}

func roundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
