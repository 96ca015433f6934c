package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/gen"
	"github.com/qaforge/qaforge/internal/version"
	"github.com/qaforge/qaforge/logger"
	"github.com/qaforge/qaforge/publish"
)

// generateRequest is the POST /api/generate body
type generateRequest struct {
	Requirement string `json:"requirement"`
	SessionID   string `json:"session_id"`
}

// artifactInfo describes one artifact in the generate response. ID and
// URL are present only when the artifact was published.
type artifactInfo struct {
	ID            string `json:"id,omitempty"`
	URL           string `json:"url,omitempty"`
	Title         string `json:"title"`
	FileName      string `json:"filename"`
	DownloadURL   string `json:"download_url"`
	Type          string `json:"type"`
	PublishStatus string `json:"publish_status"`
}

// generateResponse is the POST /api/generate success body
type generateResponse struct {
	Summary             string       `json:"summary"`
	TotalTestCases      int          `json:"total_test_cases"`
	ExploratoryCharters int          `json:"exploratory_charters"`
	Coverage            string       `json:"coverage"`
	TestPlan            artifactInfo `json:"test_plan"`
	TestCases           artifactInfo `json:"test_cases"`
	ExploratoryTesting  artifactInfo `json:"exploratory_testing"`
}

// HandleHealth reports service liveness
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "qaforge",
		"version": version.Version,
	})
}

// HandleGenerate runs the full pipeline for one requirement
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req generateRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	result, err := s.generator.Generate(gen.Request{
		Requirement: req.Requirement,
		SessionID:   req.SessionID,
	})
	if err != nil {
		if errors.IsInvalidRequestError(err) {
			writeError(w, http.StatusBadRequest, "Requirement text is required")
			return
		}
		// Wrap messages carry filesystem paths; those stay in the log
		logger.Errorw("Generation failed", "error", err, "session_id", req.SessionID,
			"write_fault", errors.IsWriteFaultError(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate documentation")
		return
	}

	publisher := s.Publisher()
	resp := generateResponse{
		Summary:             result.Summary,
		TotalTestCases:      result.TotalTestCases,
		ExploratoryCharters: result.CharterCount,
		Coverage:            result.Coverage,
	}

	for _, a := range result.Artifacts {
		info := s.describeArtifact(r, &a, publisher)
		switch a.Kind {
		case gen.KindTestPlan:
			resp.TestPlan = info
		case gen.KindTestCases:
			resp.TestCases = info
		case gen.KindExploratory:
			resp.ExploratoryTesting = info
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// describeArtifact publishes one artifact (best effort) and assembles
// its response entry with local download links.
func (s *Server) describeArtifact(r *http.Request, a *gen.Artifact, publisher *publish.Publisher) artifactInfo {
	var pr publish.Result
	switch a.Kind {
	case gen.KindTestCases:
		pr = publisher.PublishTable(r.Context(), a.Title, a.Body)
	default:
		pr = publisher.PublishDocument(r.Context(), a.Title, string(a.Body))
	}

	return artifactInfo{
		ID:            pr.ID,
		URL:           pr.URL,
		Title:         a.Title,
		FileName:      a.FileName,
		DownloadURL:   "/api/download/" + a.FileName,
		Type:          a.Format.ContentType(),
		PublishStatus: string(pr.Status),
	}
}

// HandleDownload streams a generated artifact as an attachment. Only
// .md and .csv names are served; anything else is rejected before the
// filesystem is consulted.
func (s *Server) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	name := filepath.Base(strings.TrimPrefix(r.URL.Path, "/api/download/"))
	if name == "." || name == "/" || name == "" {
		writeError(w, http.StatusBadRequest, "File name is required")
		return
	}

	contentType := ""
	switch {
	case strings.HasSuffix(name, ".md"):
		contentType = "text/markdown"
	case strings.HasSuffix(name, ".csv"):
		contentType = "text/csv"
	default:
		writeError(w, http.StatusBadRequest, "Only .md and .csv files can be downloaded")
		return
	}

	path, err := s.writer.Open(name)
	if err != nil {
		if errors.IsNotFoundError(err) {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}
		logger.Errorw("Download lookup failed", "file", name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

// HandleCredentialStatus reports where publish credentials came from
func (s *Server) HandleCredentialStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	publisher := s.Publisher()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": publisher.Available(),
		"source":    string(publisher.CredentialSource()),
	})
}
