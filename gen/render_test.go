package gen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

func TestRenderTestPlan(t *testing.T) {
	a := RenderTestPlan("User Login", "Feature: User Login\nUsers must log in with email and password.", testClock)

	assert.Equal(t, KindTestPlan, a.Kind)
	assert.Equal(t, FormatStructuredText, a.Format)
	assert.Equal(t, "User Login - Test Plan", a.Title)

	body := string(a.Body)
	assert.True(t, strings.HasPrefix(body, "User Login - Test Plan\n"))
	assert.Contains(t, body, "Date Created: March 14, 2025")
	assert.Contains(t, body, "Author: Senior QA Engineer")

	for _, section := range []string{
		"1. INTRODUCTION & SCOPE",
		"2. TEST STRATEGY",
		"3. TEST ENVIRONMENT",
		"4. RISK ANALYSIS",
		"5. SCHEDULE & MILESTONES",
		"6. ROLES & RESPONSIBILITIES",
		"7. ENTRY & EXIT CRITERIA",
		"8. DELIVERABLES & DEFECT MANAGEMENT",
	} {
		assert.Contains(t, body, section)
	}

	// Requirement excerpt is quoted in the overview
	assert.Contains(t, body, "Users must log in with email and password.")
	// Risk numbering runs across category groups
	assert.Contains(t, body, "SECURITY RISKS (Critical)\n1. Data validation vulnerabilities")
	assert.Contains(t, body, "5. Critical user workflows")
	assert.Contains(t, body, "8. Response time degradation")
	assert.Contains(t, body, "End of Test Plan")
}

func TestRenderTestPlanExcerptTruncated(t *testing.T) {
	long := strings.Repeat("x", 600)
	a := RenderTestPlan("Big", long, testClock)

	body := string(a.Body)
	assert.Contains(t, body, strings.Repeat("x", 500)+"...")
	assert.NotContains(t, body, strings.Repeat("x", 501))
}

func TestRenderTestPlanPDF(t *testing.T) {
	a, err := RenderTestPlanPDF("User Login", "Users must log in.", testClock)
	require.NoError(t, err)

	assert.Equal(t, KindTestPlan, a.Kind)
	assert.Equal(t, FormatPaginatedDocument, a.Format)
	assert.Equal(t, ".pdf", a.Format.Ext())
	assert.True(t, bytes.HasPrefix(a.Body, []byte("%PDF")))
}

func TestRenderCharters(t *testing.T) {
	a := RenderCharters("User Login", testClock)

	assert.Equal(t, KindExploratory, a.Kind)
	assert.Equal(t, FormatStructuredText, a.Format)
	assert.Equal(t, "User Login - Exploratory Testing", a.Title)

	body := string(a.Body)
	assert.Contains(t, body, "Generated: March 14, 2025")
	assert.Contains(t, body, "CHARTER SUMMARY")

	for i, name := range []string{
		"Input Validation Edge Cases",
		"Security Vulnerability Exploration",
		"Cross-Browser Compatibility Edge Cases",
		"Mobile User Experience Testing",
		"Performance Under Load",
		"Error Recovery Scenarios",
	} {
		assert.Contains(t, body, "CHARTER "+string(rune('1'+i))+": "+name)
	}

	assert.Contains(t, body, "Duration: 120 minutes")
	assert.Contains(t, body, "SESSION NOTES TEMPLATE")
	assert.Contains(t, body, "End of Exploratory Testing Charters")
}

func TestBoxTable(t *testing.T) {
	out := boxTable(
		[]string{"ID", "Name"},
		[][]string{{"1", "alpha"}, {"2", "beta"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "┌────┬───────┐", lines[0])
	assert.Equal(t, "│ ID │ Name  │", lines[1])
	assert.Equal(t, "├────┼───────┤", lines[2])
	assert.Equal(t, "│ 1  │ alpha │", lines[3])
	assert.Equal(t, "└────┴───────┘", lines[5])
}

func TestStampAndFileName(t *testing.T) {
	stamp := Stamp(testClock)
	assert.Equal(t, "20250314_092653", stamp)
	assert.Equal(t, "test_plan_20250314_092653.md", FileName(KindTestPlan, stamp, FormatStructuredText))
	assert.Equal(t, "test_cases_20250314_092653.csv", FileName(KindTestCases, stamp, FormatTabularText))
	assert.Equal(t, "test_plan_20250314_092653.pdf", FileName(KindTestPlan, stamp, FormatPaginatedDocument))
}
