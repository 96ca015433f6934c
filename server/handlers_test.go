package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/publish"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	t.Setenv(publish.CredentialsEnvVar, "")

	port := config.DefaultServerPort
	cfg := &config.Config{}
	cfg.Server.Port = &port
	cfg.Server.RatePerMinute = 0 // disabled unless a test opts in
	cfg.Output.Dir = t.TempDir()
	cfg.Generate.PlanFormat = "markdown"
	cfg.Publish.CredentialsFile = filepath.Join(t.TempDir(), "credentials.json")

	s, err := NewServer(context.Background(), cfg)
	require.NoError(t, err)
	return s, s.setupHTTPRoutes()
}

func postGenerate(t *testing.T, h http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "qaforge", body["service"])
}

func TestHandleHealthMethodNotAllowed(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleGenerate(t *testing.T) {
	_, h := newTestServer(t)

	rec := postGenerate(t, h, map[string]string{
		"requirement": "Feature: Login\nUsers must be able to log in.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, `Successfully generated comprehensive QA documentation for "Login"`, resp.Summary)
	assert.Equal(t, 20, resp.TotalTestCases)
	assert.Equal(t, 6, resp.ExploratoryCharters)
	assert.Equal(t, "100%", resp.Coverage)

	// No credentials configured: local links only, publish unavailable
	for _, info := range []artifactInfo{resp.TestPlan, resp.TestCases, resp.ExploratoryTesting} {
		assert.Equal(t, "unavailable", info.PublishStatus)
		assert.Empty(t, info.ID)
		assert.Empty(t, info.URL)
		assert.NotEmpty(t, info.FileName)
		assert.Equal(t, "/api/download/"+info.FileName, info.DownloadURL)
	}

	assert.Equal(t, "Login - Test Plan", resp.TestPlan.Title)
	assert.Equal(t, "text/markdown", resp.TestPlan.Type)
	assert.Equal(t, "text/csv", resp.TestCases.Type)
}

func TestHandleGenerateEmptyRequirement(t *testing.T) {
	_, h := newTestServer(t)

	for _, body := range []map[string]string{
		{},
		{"requirement": ""},
		{"requirement": "   \n"},
	} {
		rec := postGenerate(t, h, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Requirement text is required", resp["error"])
	}
}

func TestHandleGenerateWriteFault(t *testing.T) {
	t.Setenv(publish.CredentialsEnvVar, "")

	// Occupy the output dir path with a regular file so every write fails
	outDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(outDir, []byte("occupied"), 0o644))

	port := config.DefaultServerPort
	cfg := &config.Config{}
	cfg.Server.Port = &port
	cfg.Output.Dir = outDir
	cfg.Generate.PlanFormat = "markdown"
	cfg.Publish.CredentialsFile = filepath.Join(t.TempDir(), "credentials.json")

	s, err := NewServer(context.Background(), cfg)
	require.NoError(t, err)

	rec := postGenerate(t, s.setupHTTPRoutes(), map[string]string{"requirement": "Feature: Login"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate documentation", resp["error"])

	// The body never echoes filesystem paths
	assert.NotContains(t, rec.Body.String(), outDir)
}

func TestHandleGenerateInvalidBody(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDownload(t *testing.T) {
	_, h := newTestServer(t)

	rec := postGenerate(t, h, map[string]string{"requirement": "Feature: Export"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, resp.TestCases.DownloadURL, nil)
	dl := httptest.NewRecorder()
	h.ServeHTTP(dl, req)

	require.Equal(t, http.StatusOK, dl.Code)
	assert.Equal(t, "text/csv", dl.Header().Get("Content-Type"))
	assert.Contains(t, dl.Header().Get("Content-Disposition"), resp.TestCases.FileName)
	assert.Contains(t, dl.Body.String(), "TC_001")
}

func TestHandleDownloadRejectsExtensions(t *testing.T) {
	_, h := newTestServer(t)

	for _, name := range []string{"plan.png", "plan.pdf", "plan.txt", "plan"} {
		req := httptest.NewRequest(http.MethodGet, "/api/download/"+name, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		// Rejected by extension, even if the file existed
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestHandleDownloadMissing(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/download/test_plan_19990101_000000.md", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDownloadTraversal(t *testing.T) {
	s, _ := newTestServer(t)

	// Hit the handler directly; the mux would normalize the path first
	req := httptest.NewRequest(http.MethodGet, "/api/download/x.md", nil)
	req.URL.Path = "/api/download/../../etc/passwd.md"
	rec := httptest.NewRecorder()
	s.HandleDownload(rec, req)

	// Base-name sanitization turns this into a lookup inside the
	// output directory, where no such file exists
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCredentialStatus(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/credentials/status", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["available"])
	assert.Equal(t, "none", body["source"])
}

func TestRateLimit(t *testing.T) {
	s, h := newTestServer(t)
	s.limiter.setRate(2)

	var codes []int
	for i := 0; i < 4; i++ {
		rec := postGenerate(t, h, map[string]string{"requirement": "Feature: Login"})
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
	assert.Equal(t, http.StatusTooManyRequests, codes[3])
}

func TestCORSPreflight(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFindAvailablePort(t *testing.T) {
	port, err := findAvailablePort(55321)
	require.NoError(t, err)
	assert.Greater(t, port, 0)
}
