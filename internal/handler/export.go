package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"company-export/internal/model"
	"company-export/internal/model/request"
	"company-export/internal/model/response"
	"company-export/internal/service"
	"company-export/pkg/util"

	"github.com/go-chi/chi/v5"
)

type ExportService interface {
	Export(ctx context.Context, value string) (*model.Export, error)
	Ingest(ctx context.Context, payload map[string]any) (string, error)
	Health(ctx context.Context) (int64, error)
}

type ExportHandler struct {
	service    ExportService
	exportDir  string
	dbName     string
	collection string
}

func NewExportHandler(service ExportService, exportDir, dbName, collection string) *ExportHandler {
	return &ExportHandler{
		service:    service,
		exportDir:  exportDir,
		dbName:     dbName,
		collection: collection,
	}
}

// Export handles GET /. It accepts ?export= (or the legacy ?c= alias)
// and a mode of file, json or link. The default returns the export as
// an attachment; json inlines the data; link only hands back the URL.
func (eh *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := request.ExportQuery{
		Value: query.Get("export"),
		Mode:  query.Get("mode"),
	}
	if req.Value == "" {
		req.Value = query.Get("c")
	}
	if req.Mode == "" {
		req.Mode = request.ModeFile
	}

	if err := req.Validate(); err != nil {
		logMethod(err.Error())
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := eh.service.Export(r.Context(), req.Value)
	if err != nil {
		logMethod(err.Error())

		var notFound *service.NotFoundError
		if errors.As(err, &notFound) {
			response.WriteError(w, http.StatusNotFound, fmt.Sprintf("No company found for '%s'", notFound.Target))
			return
		}

		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	downloadURL := downloadURLFor(r, result.Filename)

	switch req.Mode {
	case request.ModeJSON:
		response.WriteJSON(w, http.StatusOK, response.ExportData{
			DownloadURL: downloadURL,
			Data:        result.Companies,
		})
	case request.ModeLink:
		response.WriteJSON(w, http.StatusOK, response.ExportLink{
			DownloadURL: downloadURL,
		})
	default:
		// Generic content type: download tooling expects octet-stream.
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		w.Header().Set("X-Download-Link", downloadURL)
		http.ServeFile(w, r, result.Path)
	}
}

// Download handles GET /download/{filename}.
func (eh *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	// Only bare basenames refer to export files.
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		logMethod("rejected download filename: " + filename)
		response.WriteError(w, http.StatusNotFound, "File not found")
		return
	}

	path := filepath.Join(eh.exportDir, filename)
	if _, err := os.Stat(path); err != nil {
		logMethod(err.Error())
		response.WriteError(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

// Health handles GET /health.
func (eh *ExportHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := eh.service.Health(r.Context())
	if err != nil {
		logMethod(err.Error())
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Health{
		Status:             "ok",
		DB:                 eh.dbName,
		Collection:         eh.collection,
		CompaniesEstimated: count,
	})
}

// Ingest handles POST /ingest.
func (eh *ExportHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logMethod(err.Error())
		response.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id, err := eh.service.Ingest(r.Context(), payload)
	if err != nil {
		logMethod(err.Error())
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Ingest{OK: true, ID: id})
}

func downloadURLFor(r *http.Request, filename string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/download/%s", scheme, r.Host, url.PathEscape(filename))
}

func logMethod(message string) {
	log.Printf("[%s] %s", util.CurrentMethod(2), message)
}
