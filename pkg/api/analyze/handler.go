package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"reportlens/pkg/core/extract"
	"reportlens/pkg/core/pipeline"
	"reportlens/pkg/core/report"
	"reportlens/pkg/models"
)

// maxUploadBytes bounds the multipart payload; research reports are small.
const maxUploadBytes = 32 << 20

// Handler serves upload-and-analyze plus result retrieval. Results live in
// an in-memory session store keyed by analysis ID; nothing is persisted.
type Handler struct {
	analyzer *pipeline.Analyzer

	mu      sync.RWMutex
	results map[string]*models.AnalysisResult
}

// NewHandler wires the pipeline into the HTTP surface.
func NewHandler(analyzer *pipeline.Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
		results:  make(map[string]*models.AnalysisResult),
	}
}

// HandleAnalyze accepts a multipart upload under the "report" field, runs
// the pipeline and returns the full AnalysisResult as JSON.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("report")
	if err != nil {
		http.Error(w, "missing \"report\" file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read upload: %v", err), http.StatusBadRequest)
		return
	}

	fmt.Printf("[ANALYZE] Upload: %s (%d bytes), template=%s\n",
		header.Filename, len(data), h.analyzer.Template())

	doc, err := extract.Open(data, header.Filename)
	if err != nil {
		http.Error(w, fmt.Sprintf("unsupported document: %v", err), http.StatusUnsupportedMediaType)
		return
	}

	result := h.analyzer.Analyze(r.Context(), doc)

	h.mu.Lock()
	h.results[result.ID] = result
	h.mu.Unlock()

	writeJSON(w, result)
}

// HandleResult returns a previously computed result by id.
func (h *Handler) HandleResult(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	result, ok := h.lookup(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}
	writeJSON(w, result)
}

// HandleReport renders a stored result as an HTML report.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	result, ok := h.lookup(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}

	html, err := report.RenderHTML(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("render failed: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (h *Handler) lookup(id string) (*models.AnalysisResult, bool) {
	if id == "" {
		return nil, false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	result, ok := h.results[id]
	return result, ok
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[ANALYZE] Failed to encode response: %v\n", err)
	}
}
