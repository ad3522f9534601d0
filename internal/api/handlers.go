// Package api exposes HTTP handlers for the wrapped service.
package api

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rusuraluca/apple-health-wrapped/internal/archive"
	"github.com/rusuraluca/apple-health-wrapped/internal/auth"
	"github.com/rusuraluca/apple-health-wrapped/internal/domain"
)

// multipartMemoryLimit bounds the in-memory portion of a parsed upload;
// anything larger spools to disk.
const multipartMemoryLimit = 32 << 20

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service        *domain.Service
	maxUploadBytes int64
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, maxUploadBytes int64) *Handler {
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/wrapped", h.wrapped)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) wrapped(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.analyzeExport(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

// analyzeExport accepts a multipart export archive upload and responds with
// the wrapped summary.
func (h *Handler) analyzeExport(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopeExportsAnalyze) {
		writeError(w, http.StatusForbidden, "forbidden", "scope exports:analyze required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "export exceeds the upload limit")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing file field")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".zip") {
		writeError(w, http.StatusBadRequest, "invalid_request", "only .zip exports are supported")
		return
	}

	tmp, err := os.CreateTemp("", "health-export-*.zip")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "unable to spool upload")
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to read upload")
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "unable to spool upload")
		return
	}

	result, err := h.service.Summarize(r.Context(), tmp.Name())
	if err != nil {
		switch {
		case errors.Is(err, archive.ErrNoRecordLog):
			writeError(w, http.StatusBadRequest, "invalid_archive", "no record log found in archive")
		case errors.Is(err, zip.ErrFormat):
			writeError(w, http.StatusBadRequest, "invalid_archive", "upload is not a zip archive")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	w.Header().Set("X-Export-ID", result.ExportID)
	writeJSON(w, http.StatusOK, result.Summary)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
