package gen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/errors"
)

func newTestGenerator(t *testing.T, opts Options) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()
	g := NewGenerator(NewWriter(dir), opts).WithClock(func() time.Time { return testClock })
	return g, dir
}

func TestGenerate(t *testing.T) {
	g, dir := newTestGenerator(t, Options{PlanFormat: "markdown"})

	result, err := g.Generate(Request{
		Requirement: "Feature: Login\nUsers must be able to log in with email and password.",
		SessionID:   "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Login", result.FeatureName)
	assert.Equal(t, `Successfully generated comprehensive QA documentation for "Login"`, result.Summary)
	assert.Equal(t, 20, result.TotalTestCases)
	assert.Equal(t, 6, result.CharterCount)
	assert.Equal(t, "100%", result.Coverage)
	assert.Equal(t, "20250314_092653", result.Stamp)
	assert.NotEmpty(t, result.RequestID)
	require.Len(t, result.Artifacts, 3)

	for _, name := range []string{
		"test_plan_20250314_092653.md",
		"test_cases_20250314_092653.csv",
		"exploratory_20250314_092653.md",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	plan := result.ArtifactByKind(KindTestPlan)
	require.NotNil(t, plan)
	assert.Equal(t, "test_plan_20250314_092653.md", plan.FileName)

	cases := result.ArtifactByKind(KindTestCases)
	require.NotNil(t, cases)
	assert.Contains(t, string(cases.Body), "TC_001,Verify happy path with all valid data,Positive - Functional,Critical")
}

func TestGenerateEmptyRequirement(t *testing.T) {
	g, _ := newTestGenerator(t, Options{PlanFormat: "markdown"})

	for _, requirement := range []string{"", "   \n\t"} {
		_, err := g.Generate(Request{Requirement: requirement})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidRequestError(err))
	}
}

func TestGeneratePDFPlan(t *testing.T) {
	g, dir := newTestGenerator(t, Options{PlanFormat: "pdf"})

	result, err := g.Generate(Request{Requirement: "Feature: Export\nExport data as CSV."})
	require.NoError(t, err)

	plan := result.ArtifactByKind(KindTestPlan)
	require.NotNil(t, plan)
	assert.Equal(t, FormatPaginatedDocument, plan.Format)
	assert.Equal(t, "test_plan_20250314_092653.pdf", plan.FileName)

	_, err = os.Stat(filepath.Join(dir, "test_plan_20250314_092653.pdf"))
	assert.NoError(t, err)
}

func TestGenerateCharterRows(t *testing.T) {
	g, _ := newTestGenerator(t, Options{PlanFormat: "markdown", IncludeCharterRows: true})

	result, err := g.Generate(Request{Requirement: "Feature: Search"})
	require.NoError(t, err)
	assert.Equal(t, 26, result.TotalTestCases)
}

func TestGenerateDeterministic(t *testing.T) {
	g, _ := newTestGenerator(t, Options{PlanFormat: "markdown"})

	a, err := g.Generate(Request{Requirement: "Feature: Search"})
	require.NoError(t, err)
	b, err := g.Generate(Request{Requirement: "Feature: Search"})
	require.NoError(t, err)

	// Same frozen clock, same content; only request IDs differ
	assert.NotEqual(t, a.RequestID, b.RequestID)
	for i := range a.Artifacts {
		assert.Equal(t, a.Artifacts[i].Body, b.Artifacts[i].Body)
	}
}

func TestWriteAllMarksWriteFault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(dir, []byte("occupied"), 0o644))

	// The output dir path is a regular file, so the mkdir fails
	w := NewWriter(dir)
	err := w.WriteAll([]Artifact{{Kind: KindTestPlan, Format: FormatStructuredText, Body: []byte("x")}}, "20250101_000000")
	require.Error(t, err)
	assert.True(t, errors.IsWriteFaultError(err))
}

func TestWriterOpen(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test_plan_x.md"), []byte("hi"), 0o644))

	path, err := w.Open("test_plan_x.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test_plan_x.md"), path)

	// Path components are stripped before lookup
	path, err = w.Open("../../test_plan_x.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test_plan_x.md"), path)

	_, err = w.Open("missing.md")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
