// Package cli implements the hrscreen command-line interface: it loads a
// job description and a candidate stream, fans evaluation out across a
// worker pool, optionally reranks and audit-logs each outcome, and writes
// the assembled output document.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnbot/hrscreening/internal/appconfig"
	"github.com/learnbot/hrscreening/internal/assemble"
	"github.com/learnbot/hrscreening/internal/auditlog"
	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/ingest"
	"github.com/learnbot/hrscreening/internal/jdsource"
	"github.com/learnbot/hrscreening/internal/rerank"
	"github.com/learnbot/hrscreening/internal/runlog"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

// appVersion is stamped into every output document's metadata.
const appVersion = "hrscreen/0.1.0"

var (
	flagCandidates  string
	flagJob         string
	flagOutput      string
	flagAsOf        string
	flagConfig      string
	flagLogLevel    string
	flagAuditLog    string
	flagWorkers     int
	flagRerankURL   string
	flagRerankToken string
)

var rootCmd = &cobra.Command{
	Use:   "hrscreen",
	Short: "Screen candidate profiles against a job description",
	Long: `hrscreen runs the résumé-screening evaluators (BM25 proximity, embedding
similarity, JD keyword coverage, tenure, salary) over a stream of candidate
profiles, aggregates them into a weighted pre-LLM score, applies hard
gates, and writes a pass/borderline/reject decision per candidate.`,
	RunE:         runScreen,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagCandidates, "candidates", "", "path to the NDJSON candidate stream (required)")
	rootCmd.Flags().StringVar(&flagJob, "job", "", "path to the job description JSON document (required)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "path to write the assembled output document (required)")
	rootCmd.Flags().StringVar(&flagAsOf, "as-of", "", "ISO-8601 date to treat as 'now' for tenure evaluation")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config overriding weights, thresholds, and evaluator parameters")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug|info|warn|error")
	rootCmd.Flags().StringVar(&flagAuditLog, "audit-log", "", "path to append NDJSON audit entries")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "parallel evaluation fan-out degree")
	rootCmd.Flags().StringVar(&flagRerankURL, "rerank-url", "", "enable the optional LLM reranker call at this URL")
	rootCmd.Flags().StringVar(&flagRerankToken, "rerank-token", "", "bearer token for the reranker endpoint")

	_ = rootCmd.MarkFlagRequired("candidates")
	_ = rootCmd.MarkFlagRequired("job")
	_ = rootCmd.MarkFlagRequired("output")
}

// Execute runs the root command; its return value is the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return 0
}

// fatalInputError marks errors that should exit 1 (fatal input errors), as
// distinct from cobra's own usage errors which exit 2.
type fatalInputError struct{ err error }

func (e fatalInputError) Error() string { return e.err.Error() }
func (e fatalInputError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if _, ok := err.(fatalInputError); ok {
		return 1
	}
	return 2
}

// outcomeOrErr is one worker's result, fed back through resultsCh.
type outcomeOrErr struct {
	outcome core.ScreeningOutcome
	err     error
}

func runScreen(cmd *cobra.Command, args []string) error {
	logger := runlog.New(flagLogLevel, os.Stderr)

	jobFile, err := os.Open(flagJob)
	if err != nil {
		return fatalInputError{fmt.Errorf("open job description: %w", err)}
	}
	defer jobFile.Close()

	job, err := jdsource.Load(jobFile)
	if err != nil {
		return fatalInputError{fmt.Errorf("load job description: %w", err)}
	}

	candidatesFile, err := os.Open(flagCandidates)
	if err != nil {
		return fatalInputError{fmt.Errorf("open candidate stream: %w", err)}
	}
	defer candidatesFile.Close()

	appCfg := appconfig.Default()
	if flagConfig != "" {
		appCfg, err = appconfig.Load(flagConfig)
		if err != nil {
			return fatalInputError{fmt.Errorf("load config: %w", err)}
		}
	}

	screeningCore, err := buildCore(appCfg)
	if err != nil {
		return fatalInputError{fmt.Errorf("build screening core: %w", err)}
	}

	var poster rerank.Poster
	if flagRerankURL != "" {
		rerankCfg := rerank.DefaultConfig(flagRerankURL)
		rerankCfg.BearerToken = flagRerankToken
		poster = rerank.NewHTTPPoster(rerankCfg, logger)
	}

	var auditWriter *auditlog.Writer
	var auditMu sync.Mutex
	if flagAuditLog != "" {
		auditFile, err := os.OpenFile(flagAuditLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fatalInputError{fmt.Errorf("open audit log: %w", err)}
		}
		defer auditFile.Close()
		auditWriter = auditlog.NewWriter(auditFile)
	}

	registry := ingest.NewRegistry(ingest.NewBizReachAdapter(), ingest.NewFreetextAdapter())
	reader := ingest.NewReader(candidatesFile, registry)

	var asOf *string
	if flagAsOf != "" {
		asOf = &flagAsOf
	}

	workers := flagWorkers
	if workers < 1 {
		workers = 1
	}

	jobsCh := make(chan screenschema.CandidateProfile, workers*2)
	resultsCh := make(chan outcomeOrErr, workers*2)

	var workerWg sync.WaitGroup
	for i := 0; i < workers; i++ {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			for candidate := range jobsCh {
				resultsCh <- evaluateOne(cmd.Context(), screeningCore, candidate, job, asOf, poster, auditWriter, &auditMu, logger)
			}
		}()
	}

	var dispatchErr error
	skipped := 0
	go func() {
		defer close(jobsCh)
		for {
			result, ok := reader.Next()
			if !ok {
				break
			}
			if result.Err != nil {
				skipped++
				logger.Warn("skipping candidate", "error", result.Err)
				continue
			}
			jobsCh <- result.Candidate
		}
		if err := reader.Err(); err != nil {
			dispatchErr = err
		}
	}()

	go func() {
		workerWg.Wait()
		close(resultsCh)
	}()

	var outcomes []core.ScreeningOutcome
	errorCount := 0
	for r := range resultsCh {
		if r.err != nil {
			errorCount++
			logger.Warn("candidate evaluation failed", "error", r.err)
			continue
		}
		outcomes = append(outcomes, r.outcome)
	}
	errorCount += skipped

	if dispatchErr != nil {
		return fatalInputError{fmt.Errorf("read candidate stream: %w", dispatchErr)}
	}

	document := assemble.Build(job.JobID, outcomes, errorCount, appVersion, time.Now())

	outFile, err := os.Create(flagOutput)
	if err != nil {
		return fatalInputError{fmt.Errorf("create output file: %w", err)}
	}
	defer outFile.Close()

	enc := json.NewEncoder(outFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document); err != nil {
		return fatalInputError{fmt.Errorf("write output: %w", err)}
	}

	logger.Info("screening run complete", "candidates", len(outcomes), "errors", errorCount)
	return nil
}

// evaluateOne runs the full per-candidate pipeline: score, gate, decide,
// optionally rerank, optionally audit-log.
func evaluateOne(
	ctx context.Context,
	screeningCore *core.ScreeningCore,
	candidate screenschema.CandidateProfile,
	job screenschema.JobDescription,
	asOf *string,
	poster rerank.Poster,
	auditWriter *auditlog.Writer,
	auditMu *sync.Mutex,
	logger *slog.Logger,
) outcomeOrErr {
	outcome, err := screeningCore.Evaluate(candidate, job, core.Context{AsOf: asOf})
	if err != nil {
		return outcomeOrErr{err: fmt.Errorf("candidate %s: %w", candidate.CandidateID, err)}
	}

	var llmPayload map[string]any
	var llmResponse json.RawMessage
	if poster != nil {
		llmPayload = core.BuildRerankPayload(job, candidate, outcome)
		llmResponse, _ = poster.Post(ctx, llmPayload)
	}

	if auditWriter != nil {
		auditMu.Lock()
		err := auditWriter.Append(outcome, llmPayload, llmResponse)
		auditMu.Unlock()
		if err != nil {
			logger.Warn("audit log append failed", "candidate_id", candidate.CandidateID, "error", err)
		}
	}

	return outcomeOrErr{outcome: outcome}
}
