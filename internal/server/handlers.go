package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
)

// handleMatch accepts a multipart upload with "resume" and "jd" file
// parts and returns the full analysis result.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	resume, err := s.formDocument(r, "resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	jd, err := s.formDocument(r, "jd")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Match(r.Context(), resume, jd)
	if err != nil {
		var inputErr *engine.InputError
		if errors.As(err, &inputErr) {
			s.errorResponse(w, http.StatusBadRequest, inputErr.Error())
			return
		}
		s.logger.Error("match failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	// Persistence failures never fail a completed analysis
	if s.store != nil {
		s.persistResult(r, result)
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// formDocument reads one uploaded file from the parsed multipart form,
// enforcing the per-file size cap.
func (s *Server) formDocument(r *http.Request, field string) (types.Document, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return types.Document{}, fmt.Errorf("missing %q file field", field)
	}
	defer file.Close()

	if header.Size > s.maxUploadBytes {
		return types.Document{}, fmt.Errorf("%q exceeds the %d MB upload limit", field, s.maxUploadBytes>>20)
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		return types.Document{}, fmt.Errorf("reading %q upload: %w", field, err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return types.Document{}, fmt.Errorf("%q exceeds the %d MB upload limit", field, s.maxUploadBytes>>20)
	}

	return types.Document{Filename: header.Filename, Data: data}, nil
}

// persistResult saves the analysis and its skill counters. Errors are
// logged and swallowed; the client already has its result.
func (s *Server) persistResult(r *http.Request, result *types.AnalysisResult) {
	ctx := r.Context()

	if _, err := s.store.SaveAnalysis(ctx, result); err != nil {
		s.logger.Warn("saving analysis", zap.Error(err))
	}

	jdSkills := make(map[string]string)
	resumeSkills := make(map[string]string)
	for _, cat := range result.Categories {
		for _, skill := range cat.Matched {
			jdSkills[skill] = cat.Category
			resumeSkills[skill] = cat.Category
		}
		for _, skill := range cat.Missing {
			jdSkills[skill] = cat.Category
		}
	}
	if err := s.store.UpdateSkillTracking(ctx, jdSkills, resumeSkills); err != nil {
		s.logger.Warn("updating skill tracking", zap.Error(err))
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleHistory lists saved analyses, most recent first
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	limit := queryInt(r, "limit", 20)
	archived := r.URL.Query().Get("archived") == "true"

	items, err := s.store.History(r.Context(), limit, archived)
	if err != nil {
		s.logger.Error("listing history", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list history")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": items, "count": len(items)})
}

// handleStats returns aggregate statistics over saved analyses
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.logger.Error("computing stats", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleTrending returns the most frequently demanded skills
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	limit := queryInt(r, "limit", 20)
	skills, err := s.store.TrendingSkills(r.Context(), limit)
	if err != nil {
		s.logger.Error("listing trending skills", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list trending skills")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills, "count": len(skills)})
}

// handleArchive marks an analysis as archived
func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	s.mutateAnalysis(w, r, s.storeArchive)
}

// handleDelete removes an analysis permanently
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mutateAnalysis(w, r, s.storeDelete)
}

func (s *Server) storeArchive(r *http.Request, id uuid.UUID) error {
	return s.store.ArchiveAnalysis(r.Context(), id)
}

func (s *Server) storeDelete(r *http.Request, id uuid.UUID) error {
	return s.store.DeleteAnalysis(r.Context(), id)
}

func (s *Server) mutateAnalysis(w http.ResponseWriter, r *http.Request, op func(*http.Request, uuid.UUID) error) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	if err := op(r, id); err != nil {
		var notFound *db.ErrAnalysisNotFound
		if errors.As(err, &notFound) {
			s.errorResponse(w, http.StatusNotFound, notFound.Error())
			return
		}
		s.logger.Error("updating analysis", zap.String("id", id.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update analysis")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"id": id.String(), "status": "ok"})
}

// queryInt parses an integer query parameter with a default
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
