package cli

import (
	"fmt"

	"github.com/learnbot/hrscreening/internal/appconfig"
	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/evaluators/bm25proximity"
	"github.com/learnbot/hrscreening/internal/evaluators/embedsimilarity"
	"github.com/learnbot/hrscreening/internal/evaluators/jdmatcher"
	"github.com/learnbot/hrscreening/internal/evaluators/salary"
	"github.com/learnbot/hrscreening/internal/evaluators/tenure"
	"github.com/learnbot/hrscreening/internal/synonyms"
)

// buildCore assembles a ScreeningCore over all five evaluators, decoding
// each evaluator's raw config sub-document from appCfg.Evaluators and the
// core-level weight/threshold overrides from appCfg.Core.
func buildCore(appCfg appconfig.AppConfig) (*core.ScreeningCore, error) {
	skillSynonyms := synonyms.Table()

	bm25Cfg := bm25proximity.DefaultConfig()
	bm25Cfg.Synonyms = skillSynonyms
	if err := appconfig.Decode(appCfg.Evaluators.BM25, &bm25Cfg); err != nil {
		return nil, fmt.Errorf("bm25 config: %w", err)
	}

	embedCfg := embedsimilarity.DefaultConfig()
	embedCfg.Synonyms = skillSynonyms
	if err := appconfig.Decode(appCfg.Evaluators.Embed, &embedCfg); err != nil {
		return nil, fmt.Errorf("embed config: %w", err)
	}

	jdCfg := jdmatcher.DefaultConfig()
	if err := appconfig.Decode(appCfg.Evaluators.JD, &jdCfg); err != nil {
		return nil, fmt.Errorf("jd config: %w", err)
	}

	tenureCfg := tenure.DefaultConfig()
	if err := appconfig.Decode(appCfg.Evaluators.Tenure, &tenureCfg); err != nil {
		return nil, fmt.Errorf("tenure config: %w", err)
	}

	salaryCfg := salary.DefaultConfig()
	if err := appconfig.Decode(appCfg.Evaluators.Salary, &salaryCfg); err != nil {
		return nil, fmt.Errorf("salary config: %w", err)
	}

	evaluators := []core.Evaluator{
		bm25proximity.New(bm25Cfg),
		embedsimilarity.New(embedCfg),
		jdmatcher.New(jdCfg),
		tenure.New(tenureCfg, nil),
		salary.New(salaryCfg),
	}

	var opts []core.Option
	if len(appCfg.Core.ScoreWeights) > 0 {
		opts = append(opts, core.WithWeights(appCfg.Core.ScoreWeights))
	}
	if len(appCfg.Core.Thresholds) > 0 {
		thresholds := core.DefaultThresholds()
		if v, ok := appCfg.Core.Thresholds["pass"]; ok {
			thresholds.Pass = v
		}
		if v, ok := appCfg.Core.Thresholds["borderline"]; ok {
			thresholds.Borderline = v
		}
		if v, ok := appCfg.Core.Thresholds["reject"]; ok {
			thresholds.Reject = v
		}
		opts = append(opts, core.WithThresholds(thresholds))
	}

	return core.New(evaluators, opts...), nil
}
