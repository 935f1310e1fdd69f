// Package httpadapter exposes the letter generation pipeline over HTTP.
package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
	"github.com/tomsdev9/legalrecours/internal/core/ports"
	"github.com/tomsdev9/legalrecours/internal/core/subject"
	"github.com/tomsdev9/legalrecours/internal/observability/metrics"
)

type Router struct {
	generator ports.LetterGenerator
	previewer ports.LetterPreviewer
	enqueuer  ports.LetterEnqueuer
	fetcher   ports.DocumentFetcher

	metrics     *metrics.HTTPServerMetrics
	service     string
	limiter     *clientLimiter
	maxInFlight int
}

type Options struct {
	Service        string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxInFlight    int
	Metrics        *metrics.HTTPServerMetrics
}

func NewRouter(
	generator ports.LetterGenerator,
	previewer ports.LetterPreviewer,
	enqueuer ports.LetterEnqueuer,
	fetcher ports.DocumentFetcher,
	opts Options,
) *Router {
	service := opts.Service
	if service == "" {
		service = "api"
	}
	var limiter *clientLimiter
	if opts.RateLimitRPS > 0 {
		limiter = newClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	}
	return &Router{
		generator:   generator,
		previewer:   previewer,
		enqueuer:    enqueuer,
		fetcher:     fetcher,
		metrics:     opts.Metrics,
		service:     service,
		limiter:     limiter,
		maxInFlight: opts.MaxInFlight,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/letters", rt.generateLetter)
	mux.HandleFunc("/v1/letters/preview", rt.previewLetter)
	mux.HandleFunc("/v1/letters/checkout", rt.checkoutLetter)
	mux.HandleFunc("/v1/letters/fields/", rt.caseFields)
	mux.HandleFunc("/v1/documents/", rt.downloadDocument)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.maxInFlight, time.Second)
	handler = rateLimitMiddleware(handler, rt.limiter, rt.metrics, rt.service)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) generateLetter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	req, ok := decodeLetterRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	result, err := rt.generator.Generate(r.Context(), *req)
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordLetterGenerated(
			rt.service,
			string(req.Organism),
			string(req.CaseID),
			result.Degraded,
			len(result.PDF),
			time.Since(start),
		)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", domain.DownloadFilename(req.CaseID)))
	w.Header().Set("X-Document-Id", result.Document.ID)
	w.Header().Set("X-Letter-Degraded", fmt.Sprintf("%t", result.Degraded))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}

func (rt *Router) previewLetter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	req, ok := decodeLetterRequest(w, r)
	if !ok {
		return
	}

	preview, err := rt.previewer.Preview(r.Context(), *req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// checkoutLetter is called by the payment backend once a checkout is
// confirmed. It returns 202 with the document id the success page polls.
func (rt *Router) checkoutLetter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	req, ok := decodeLetterRequest(w, r)
	if !ok {
		return
	}

	receipt, err := rt.enqueuer.Enqueue(r.Context(), *req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, receipt)
}

func (rt *Router) caseFields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := domain.CaseID(strings.TrimPrefix(r.URL.Path, "/v1/letters/fields/"))
	caseDef, ok := domain.CaseByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown case"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"case":        caseDef,
		"fields":      domain.FieldsForCase(id),
		"attachments": subject.Attachments(id, caseDef.Organism, nil),
	})
}

func (rt *Router) downloadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, pdf, err := rt.fetcher.Fetch(r.Context(), id)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordDownload(rt.service, "not_found")
		}
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordDownload(rt.service, "success")
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func decodeLetterRequest(w http.ResponseWriter, r *http.Request) (*domain.LetterRequest, bool) {
	var req domain.LetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
