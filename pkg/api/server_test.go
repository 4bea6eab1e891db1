package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kanagaraj46/socialnet/pkg/analysis"
	"github.com/Kanagaraj46/socialnet/pkg/config"
	"github.com/Kanagaraj46/socialnet/pkg/metrics"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(config.Default(), nil, metrics.NewRegistry())
	require.NoError(t, err)
	return s
}

func postText(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var health healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.False(t, health.HasAnalysis)
}

func TestAnalyze_TextBody(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	rec := postText(t, handler, "/analyze", "A B C\nB A D\nC A\nD B")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 4, result.NodeCount)
	assert.Equal(t, 3, result.EdgeCount)
	assert.NotEmpty(t, result.ID)

	require.NotNil(t, s.CurrentResult())
	assert.Equal(t, result.ID, s.CurrentResult().ID)
}

func TestAnalyze_MultipartUpload(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "graph.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("A B\nB C"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.NodeCount)
}

func TestAnalyze_EmptyBody(t *testing.T) {
	s := newTestServer(t)

	rec := postText(t, s.Handler(), "/analyze", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_BlankLine(t *testing.T) {
	s := newTestServer(t)

	rec := postText(t, s.Handler(), "/analyze", "A B\n   \nC D")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "line")
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyze_TopKQueryParam(t *testing.T) {
	s := newTestServer(t)

	rec := postText(t, s.Handler(), "/analyze?top_k=2", "A B C D E F\nB C\nC D")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.LessOrEqual(t, len(result.TopByDegree), 2)
}

func TestAnalyze_InvalidTopK(t *testing.T) {
	s := newTestServer(t)

	rec := postText(t, s.Handler(), "/analyze?top_k=never", "A B")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postText(t, s.Handler(), "/analyze?top_k=1000", "A B")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGraphQL_ConflictBeforeFirstAnalysis(t *testing.T) {
	s := newTestServer(t)

	rec := postText(t, s.Handler(), "/graphql", `{"query":"{ health }"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGraphQL_AfterAnalysis(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	rec := postText(t, handler, "/analyze", "A B\nB C")
	require.Equal(t, http.StatusOK, rec.Code)

	body := `{"query":"{ summary { nodeCount } }"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Data struct {
			Summary struct {
				NodeCount int `json:"nodeCount"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Summary.NodeCount)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	rec := postText(t, handler, "/analyze", "A B")
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "socialnet_analyses_total")
}

func TestAnalyze_ReplacesPreviousResult(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	rec := postText(t, handler, "/analyze", "A B")
	require.Equal(t, http.StatusOK, rec.Code)
	first := s.CurrentResult().ID

	rec = postText(t, handler, "/analyze", "X Y Z")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotEqual(t, first, s.CurrentResult().ID)
	assert.Equal(t, 3, s.CurrentResult().NodeCount)
}
