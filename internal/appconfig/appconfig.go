// Package appconfig loads the optional YAML configuration document that
// overrides score weights, decision thresholds, and per-evaluator
// parameters, mirroring the original's AppConfig/CoreConfig/
// EvaluatorConfig shape (schemas/config.py) but decoded with
// gopkg.in/yaml.v3 the way the reference corpus's CLI tools load
// settings, instead of a pydantic model.
package appconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CoreConfig overrides ScreeningCore's aggregation parameters.
type CoreConfig struct {
	ScoreWeights map[string]float64 `yaml:"score_weights"`
	Thresholds   map[string]float64 `yaml:"thresholds"`
}

// EvaluatorConfig carries raw per-evaluator override maps; each evaluator
// package is responsible for interpreting its own sub-document.
type EvaluatorConfig struct {
	BM25   map[string]any `yaml:"bm25"`
	Embed  map[string]any `yaml:"embed"`
	Tenure map[string]any `yaml:"tenure"`
	Salary map[string]any `yaml:"salary"`
	JD     map[string]any `yaml:"jd"`
}

// AppConfig is the root document loaded from --config.
type AppConfig struct {
	Core       CoreConfig      `yaml:"core"`
	Evaluators EvaluatorConfig `yaml:"evaluators"`
}

// Load reads and parses a YAML config document from path. A path that
// cannot be read is an error; callers with no config path ("") should use
// Default instead of calling Load.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns an empty AppConfig, equivalent to running with every
// evaluator and core default untouched.
func Default() AppConfig {
	return AppConfig{}
}

// Decode re-marshals a raw evaluator override sub-document (e.g.
// EvaluatorConfig.BM25) into a typed Config struct via its yaml tags. A nil
// or empty raw map leaves out unchanged, so callers can decode directly
// into an already-defaulted Config.
func Decode(raw map[string]any, out any) error {
	if len(raw) == 0 {
		return nil
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("remarshal evaluator override: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode evaluator override: %w", err)
	}
	return nil
}
