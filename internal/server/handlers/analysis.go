// internal/server/handlers/analysis.go

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kex/internal/domain/analysis"
)

// AnalyzeRequest is the request body for POST /analyze: either a single
// text with an optional title, or a batch of texts.
type AnalyzeRequest struct {
	Text  string   `json:"text,omitempty"`
	Title string   `json:"title,omitempty"`
	Texts []string `json:"texts,omitempty"`
}

// ItemsResponse wraps analysis results, with per-item errors for batches
type ItemsResponse struct {
	Items  []analysis.Analysis  `json:"items"`
	Errors []analysis.ItemError `json:"errors,omitempty"`
}

// AnalysisHandler handles analysis-related HTTP requests
type AnalysisHandler struct {
	service analysis.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
	}
}

// Analyze runs the pipeline on the submitted text or batch of texts
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch {
	case req.Texts != nil:
		if len(req.Texts) == 0 {
			respondWithError(w, http.StatusUnprocessableEntity, "texts list is empty", nil)
			return
		}

		items, itemErrors := h.service.AnalyzeBatch(r.Context(), req.Texts)
		if items == nil {
			items = []analysis.Analysis{}
		}

		respondWithJSON(w, http.StatusOK, ItemsResponse{
			Items:  items,
			Errors: itemErrors,
		})

	case req.Text != "" || req.Title != "":
		a, err := h.service.Analyze(r.Context(), req.Text, req.Title)
		if err != nil {
			if errors.Is(err, analysis.ErrEmptyText) {
				respondWithError(w, http.StatusUnprocessableEntity, "Text is empty", nil)
			} else {
				respondWithError(w, http.StatusInternalServerError, "Failed to analyze text", err)
			}
			return
		}

		respondWithJSON(w, http.StatusOK, ItemsResponse{
			Items: []analysis.Analysis{*a},
		})

	default:
		respondWithError(w, http.StatusUnprocessableEntity, "Provide 'text' or 'texts'", nil)
	}
}

// Search returns stored analyses matching topic and/or keyword filters
func (h *AnalysisHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := analysis.Filter{
		Topic:   r.URL.Query().Get("topic"),
		Keyword: r.URL.Query().Get("keyword"),
	}

	items, err := h.service.Search(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to search analyses", err)
		return
	}
	if items == nil {
		items = []analysis.Analysis{}
	}

	respondWithJSON(w, http.StatusOK, ItemsResponse{Items: items})
}

// Get returns a specific analysis by ID
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing analysis ID", nil)
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Analysis not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to get analysis", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, a)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	if err != nil && code >= 500 {
		log.Printf("HTTP error %d: %s: %v", code, message, err)
	}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
