// Package tenure implements the Tenure evaluator (spec.md §4.5): per-role
// duration computation, job-hopper classification, and a contractor
// relaxation rule for candidates whose entire history is short-term
// engagements.
package tenure

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

const Method = "tenure"

// Config holds the tunable tenure thresholds.
type Config struct {
	AverageThresholdMonths         float64  `yaml:"average_threshold_months"`
	RecentShortThresholdMonths     float64  `yaml:"recent_short_threshold_months"`
	ContractAverageThresholdMonths float64  `yaml:"contract_average_threshold_months"`
	RecentWindow                   int      `yaml:"recent_window"`
	ContractTypes                  []string `yaml:"contract_types"`
}

// DefaultConfig returns the default tenure thresholds.
func DefaultConfig() Config {
	return Config{
		AverageThresholdMonths:         18.0,
		RecentShortThresholdMonths:     12.0,
		ContractAverageThresholdMonths: 12.0,
		RecentWindow:                   3,
		ContractTypes:                  []string{"contract", "freelance", "業務委託"},
	}
}

// NowFunc returns the current time; overridable for deterministic tests.
type NowFunc func() time.Time

// Evaluator is the Tenure evaluator.
type Evaluator struct {
	config Config
	now    NowFunc
}

// New builds an Evaluator; a zero-value Config falls back to DefaultConfig
// and a nil now falls back to time.Now.
func New(config Config, now NowFunc) *Evaluator {
	if config.AverageThresholdMonths == 0 {
		config = DefaultConfig()
	}
	if now == nil {
		now = time.Now
	}
	return &Evaluator{config: config, now: now}
}

type experienceTenure struct {
	Company        string     `json:"company"`
	Title          string     `json:"title"`
	Months         float64    `json:"months"`
	EmploymentType *string    `json:"employment_type,omitempty"`
	EndDate        time.Time  `json:"end_date"`
	IsContract     bool       `json:"is_contract"`
}

// Evaluate implements core.Evaluator.
func (e *Evaluator) Evaluate(candidate screenschema.CandidateProfile, ctx core.Context) (core.EvaluationResult, error) {
	asOf := e.resolveAsOf(ctx)
	perExperience := e.computePerExperience(candidate.Experiences, asOf)

	avgMonths := averageMonths(perExperience, func(experienceTenure) bool { return true })
	recentShortCount := e.countRecentShort(perExperience)

	isJobHopper := len(perExperience) > 0 &&
		avgMonths < e.config.AverageThresholdMonths &&
		recentShortCount >= 2

	isContractProfile := e.isContractProfile(perExperience)
	contractAvgMonths := averageMonths(perExperience, func(item experienceTenure) bool { return item.IsContract })

	passesContractRule := isContractProfile && contractAvgMonths >= e.config.ContractAverageThresholdMonths
	passes := !isJobHopper || passesContractRule

	tenurePass := 0.0
	if passes {
		tenurePass = 1.0
	}

	return core.EvaluationResult{
		Method: Method,
		Scores: map[string]float64{
			"tenure_pass":       tenurePass,
			"tenure_avg_months": avgMonths,
		},
		Metadata: map[string]any{
			"average_months":           avgMonths,
			"per_experience":           perExperience,
			"recent_short_tenures":     recentShortCount,
			"is_job_hopper":            isJobHopper,
			"is_contract_profile":      isContractProfile,
			"contract_average_months":  contractAvgMonths,
			"passes_contract_rule":     passesContractRule,
		},
	}, nil
}

func (e *Evaluator) computePerExperience(experiences []screenschema.ExperienceEntry, asOf time.Time) []experienceTenure {
	var normalized []experienceTenure
	for _, exp := range experiences {
		months, endDate, ok := e.monthsForExperience(exp, asOf)
		if !ok {
			continue
		}
		normalized = append(normalized, experienceTenure{
			Company:        exp.Company,
			Title:          exp.Title,
			Months:         months,
			EmploymentType: exp.EmploymentType,
			EndDate:        endDate,
			IsContract:     e.isContract(exp.EmploymentType),
		})
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].EndDate.After(normalized[j].EndDate)
	})
	return normalized
}

func (e *Evaluator) monthsForExperience(exp screenschema.ExperienceEntry, asOf time.Time) (float64, time.Time, bool) {
	start, ok := parseDateNoDefault(exp.Start)
	if !ok {
		return 0, time.Time{}, false
	}
	end, _ := parseDateWithDefault(exp.End, asOf)
	if end.Before(start) {
		return 0, time.Time{}, false
	}
	return float64(monthsBetween(start, end)), end, true
}

// parseDateNoDefault parses a "YYYY-MM" or "YYYY-MM-DD" string with no
// fallback: a nil/empty/"現在" value reports ok=false.
func parseDateNoDefault(value *string) (time.Time, bool) {
	if value == nil || *value == "" || *value == "現在" {
		return time.Time{}, false
	}
	return parseDateString(*value)
}

// parseDateWithDefault parses value, falling back to def when value is
// nil/empty/"現在" or fails to parse.
func parseDateWithDefault(value *string, def time.Time) (time.Time, bool) {
	if value == nil || *value == "" || *value == "現在" {
		return def, true
	}
	if t, ok := parseDateString(*value); ok {
		return t, true
	}
	return def, true
}

func parseDateString(raw string) (time.Time, bool) {
	if len(raw) == 7 && raw[4] == '-' {
		year, errY := strconv.Atoi(raw[:4])
		month, errM := strconv.Atoi(raw[5:7])
		if errY == nil && errM == nil {
			return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// monthsBetween computes the calendar-month span between start and end,
// matching the "whole months elapsed" semantics of pendulum's diff().
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func (e *Evaluator) countRecentShort(experiences []experienceTenure) int {
	window := experiences
	if len(window) > e.config.RecentWindow {
		window = window[:e.config.RecentWindow]
	}
	count := 0
	for _, item := range window {
		if item.Months < e.config.RecentShortThresholdMonths {
			count++
		}
	}
	return count
}

func averageMonths(experiences []experienceTenure, include func(experienceTenure) bool) float64 {
	var sum float64
	var n int
	for _, item := range experiences {
		if include(item) {
			sum += item.Months
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (e *Evaluator) isContractProfile(experiences []experienceTenure) bool {
	if len(experiences) == 0 {
		return false
	}
	for _, item := range experiences {
		if !item.IsContract {
			return false
		}
	}
	return true
}

func (e *Evaluator) isContract(employmentType *string) bool {
	if employmentType == nil {
		return false
	}
	normalized := strings.ToLower(strings.TrimSpace(*employmentType))
	for _, t := range e.config.ContractTypes {
		if strings.ToLower(t) == normalized {
			return true
		}
	}
	return false
}

func (e *Evaluator) resolveAsOf(ctx core.Context) time.Time {
	defaultNow := e.now()
	if ctx.AsOf == nil {
		return defaultNow
	}
	parsed, _ := parseDateWithDefault(ctx.AsOf, defaultNow)
	return parsed
}
