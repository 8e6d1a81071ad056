package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/compose"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	eng := engine.New(nil, nil, compose.DefaultWeights(), nil)
	return New(eng, Options{Port: 0})
}

type uploadFile struct {
	filename string
	content  string
}

// multipartBody builds a file-upload request body
func multipartBody(t *testing.T, files map[string]uploadFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, f := range files {
		part, err := w.CreateFormFile(field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleMatch(t *testing.T) {
	srv := testServer(t)

	body, contentType := multipartBody(t, map[string]uploadFile{
		"resume": {"john_smith.txt", "John Smith\nPython developer with Docker experience"},
		"jd":     {"role.txt", "Looking for Python, AWS and React expertise"},
	})

	req := httptest.NewRequest(http.MethodPost, "/match", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 33, result.Score)
	assert.Equal(t, types.VerdictNeedsImprovement, result.Verdict)
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"aws", "react"}, result.MissingSkills)
	assert.Equal(t, "John Smith", result.CandidateName)
	assert.Equal(t, "john_smith.txt", result.ResumeFilename)
}

func TestHandleMatch_MissingFile(t *testing.T) {
	srv := testServer(t)

	body, contentType := multipartBody(t, map[string]uploadFile{
		"resume": {"resume.txt", "John Smith\nPython developer"},
	})

	req := httptest.NewRequest(http.MethodPost, "/match", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "jd")
}

func TestHandleMatch_EmptyDocument(t *testing.T) {
	srv := testServer(t)

	body, contentType := multipartBody(t, map[string]uploadFile{
		"resume": {"resume.txt", "   "},
		"jd":     {"role.txt", "Python required"},
	})

	req := httptest.NewRequest(http.MethodPost, "/match", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid resume input")
}

func TestHandleMatch_NotMultipart(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewBufferString(`{"resume": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestPersistenceEndpointsWithoutStore(t *testing.T) {
	srv := testServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/history"},
		{http.MethodGet, "/stats"},
		{http.MethodGet, "/skills/trending"},
		{http.MethodDelete, "/history/be96ebc0-47a4-4a45-b9ac-38718fc2e9e4"},
		{http.MethodPost, "/history/be96ebc0-47a4-4a45-b9ac-38718fc2e9e4/archive"},
	}

	for _, tt := range paths {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/match", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", 20},
		{"limit=5", 5},
		{"limit=abc", 20},
		{"limit=-1", 20},
		{"limit=0", 20},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/history?"+tt.query, nil)
		assert.Equal(t, tt.expected, queryInt(req, "limit", 20), "query %q", tt.query)
	}
}
