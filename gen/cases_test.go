package gen

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCaseRows(t *testing.T, a Artifact) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(a.Body)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRenderTestCases(t *testing.T) {
	a, err := RenderTestCases("Login", false)
	require.NoError(t, err)

	assert.Equal(t, KindTestCases, a.Kind)
	assert.Equal(t, FormatTabularText, a.Format)
	assert.Equal(t, "Login - Test Cases", a.Title)

	records := parseCaseRows(t, a)
	require.Len(t, records, 21) // header + 20 cases
	assert.Equal(t, caseColumns, records[0])

	for i, row := range records[1:] {
		assert.Equal(t, fmt.Sprintf("TC_%03d", i+1), row[0])
		require.Len(t, row, 13)
		// Execution columns start empty
		assert.Empty(t, row[8])
		assert.Empty(t, row[9])
		assert.Empty(t, row[10])
	}

	first := records[1]
	assert.Equal(t, "Verify happy path with all valid data", first[1])
	assert.Equal(t, "Positive - Functional", first[2])
	assert.Equal(t, "Critical", first[3])
	assert.Equal(t, "1. Navigate to feature; 2. Enter valid data; 3. Submit", first[6])
	assert.Equal(t, "REQ-001", first[12])

	sql := records[9]
	assert.Equal(t, "TC_009", sql[0])
	assert.Equal(t, "SQL injection payload: admin'; DROP TABLE--", sql[5])
}

func TestRenderTestCasesWithCharterRows(t *testing.T) {
	a, err := RenderTestCases("Login", true)
	require.NoError(t, err)

	records := parseCaseRows(t, a)
	require.Len(t, records, 27) // header + 20 base + 6 charter sweeps

	for _, row := range records[21:] {
		assert.Equal(t, "Exploratory - Charter", row[2])
		assert.Equal(t, "REQ-006", row[12])
	}
	assert.Equal(t, "TC_021", records[21][0])
	assert.Equal(t, "TC_026", records[26][0])
	assert.Contains(t, records[21][1], "Input Validation Edge Cases")
}
