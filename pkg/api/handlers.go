package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kanagaraj46/socialnet/pkg/algorithms"
	"github.com/Kanagaraj46/socialnet/pkg/analysis"
	"github.com/Kanagaraj46/socialnet/pkg/graph"
	"github.com/Kanagaraj46/socialnet/pkg/logging"
	"github.com/Kanagaraj46/socialnet/pkg/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	HasAnalysis bool   `json:"has_analysis"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	respondJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Version:     Version,
		Uptime:      time.Since(s.startTime).Round(time.Second).String(),
		HasAnalysis: s.CurrentResult() != nil,
	})
}

// handleAnalyze accepts an adjacency list as a raw text body or as the
// "file" field of a multipart form, runs the full analysis, stores the
// result, and returns it.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	content, err := s.readUpload(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(content) == 0 {
		respondError(w, http.StatusBadRequest, "upload is empty")
		return
	}
	if err := validation.ValidateUpload(content); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	opts, err := parseAnalyzeOptions(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg := s.cfg.Analysis
	if opts.TopK > 0 {
		cfg.TopK = opts.TopK
	}
	if opts.SuspiciousRatio > 0 {
		cfg.SuspiciousRatio = opts.SuspiciousRatio
	}

	analyzer := analysis.NewAnalyzer(cfg, s.logger, s.registry)
	result, err := analyzer.AnalyzeReader(r.Context(), bytes.NewReader(content))
	if err != nil {
		s.logger.Warn("analysis failed", logging.Error(err))
		respondError(w, analyzeStatus(err), err.Error())
		return
	}

	s.setCurrent(result)
	s.logger.Info("analysis complete",
		logging.AnalysisID(result.ID),
		logging.Nodes(result.NodeCount),
		logging.Edges(result.EdgeCount),
	)
	respondJSON(w, http.StatusOK, result)
}

// handleGraphQL answers 409 until the first analysis exists so clients get
// a clear signal instead of field-level errors.
func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && s.CurrentResult() == nil {
		respondError(w, http.StatusConflict, "no analysis available; POST an adjacency list to /analyze first")
		return
	}
	s.gql.ServeHTTP(w, r)
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
			return nil, errors.New("invalid multipart form")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("multipart form is missing the file field")
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.New("failed to read request body")
	}
	return content, nil
}

func parseAnalyzeOptions(r *http.Request) (*validation.AnalyzeOptions, error) {
	opts := &validation.AnalyzeOptions{}
	q := r.URL.Query()
	if v := q.Get("top_k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("top_k must be an integer")
		}
		opts.TopK = n
	}
	if v := q.Get("suspicious_ratio"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("suspicious_ratio must be a number")
		}
		opts.SuspiciousRatio = f
	}
	if err := validation.ValidateAnalyzeOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func analyzeStatus(err error) int {
	switch {
	case errors.Is(err, graph.ErrParse), errors.Is(err, graph.ErrEmptyGraph):
		return http.StatusBadRequest
	case errors.Is(err, algorithms.ErrGraphTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
