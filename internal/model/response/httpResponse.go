package response

import (
	"encoding/json"
	"log"
	"net/http"

	"company-export/internal/model"
)

// Detail is the error body shape: {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

type ExportLink struct {
	DownloadURL string `json:"download_url"`
}

type ExportData struct {
	DownloadURL string          `json:"download_url"`
	Data        []model.Company `json:"data"`
}

type Health struct {
	Status             string `json:"status"`
	DB                 string `json:"db"`
	Collection         string `json:"collection"`
	CompaniesEstimated int64  `json:"companies_estimated"`
}

type Ingest struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("JSON encoding error", err)

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Detail{Detail: message})
}
