package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"company-export/internal/model"
	"company-export/pkg/util"

	"github.com/google/uuid"
)

// shortcuts maps well-known abbreviations to full company names so
// clients can ask for "conti" instead of the exact document name.
var shortcuts = map[string]string{
	"c":           "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)",
	"a":           "Airbus SE (NBB: EADS Y)",
	"b":           "Boeing Co. (The) (NYS: BA)",
	"d":           "Denso Corp (NBB: DNZO Y)",
	"m":           "Magna International Inc (NYS: MGA)",
	"i":           "Infineon Technologies AG (NBB: IFNN Y)",
	"s":           "STMicroelectronics NV (NYS: STM)",
	"conti":       "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)",
	"continental": "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)",
	"airbus":      "Airbus SE (NBB: EADS Y)",
	"eads":        "Airbus SE (NBB: EADS Y)",
	"boeing":      "Boeing Co. (The) (NYS: BA)",
	"ba":          "Boeing Co. (The) (NYS: BA)",
	"denso":       "Denso Corp (NBB: DNZO Y)",
	"dnzo":        "Denso Corp (NBB: DNZO Y)",
	"magna":       "Magna International Inc (NYS: MGA)",
	"mga":         "Magna International Inc (NYS: MGA)",
	"infineon":    "Infineon Technologies AG (NBB: IFNN Y)",
	"ifnn":        "Infineon Technologies AG (NBB: IFNN Y)",
	"stmicro":     "STMicroelectronics NV (NYS: STM)",
	"stm":         "STMicroelectronics NV (NYS: STM)",
}

type Repository interface {
	FindByNameExact(ctx context.Context, name string) ([]model.Company, error)
	FindByNameContains(ctx context.Context, name string) ([]model.Company, error)
	EstimatedCount(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	InsertIngestLog(ctx context.Context, id string, receivedAt time.Time, payload []byte) error
}

// NotFoundError reports that no company matched the resolved target.
type NotFoundError struct {
	Target string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no company found for '%s'", e.Target)
}

type ExportService struct {
	repo      Repository
	exportDir string
}

func NewExportService(repo Repository, exportDir string) *ExportService {
	return &ExportService{
		repo:      repo,
		exportDir: exportDir,
	}
}

// ResolveTarget maps a shortcut to its full company name; unknown
// values pass through trimmed.
func ResolveTarget(value string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	if full, ok := shortcuts[key]; ok {
		return full
	}
	return strings.TrimSpace(value)
}

// Export resolves the target name, looks it up (exact match first,
// contains fallback) and writes the matches to a uniquely named JSON
// file in the export directory.
func (es *ExportService) Export(ctx context.Context, value string) (*model.Export, error) {
	target := ResolveTarget(value)

	companies, err := es.repo.FindByNameExact(ctx, target)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		companies, err = es.repo.FindByNameContains(ctx, target)
		if err != nil {
			return nil, err
		}
	}
	if len(companies) == 0 {
		return nil, &NotFoundError{Target: target}
	}

	filename := fmt.Sprintf("%s_%s.json", util.SafeFilename(target), uuid.NewString())
	path := filepath.Join(es.exportDir, filename)

	data, err := json.MarshalIndent(companies, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export encode failed: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("export write failed: %w", err)
	}

	return &model.Export{
		Target:    target,
		Filename:  filename,
		Path:      path,
		Companies: companies,
	}, nil
}

// Ingest stores an arbitrary JSON payload with a receive timestamp and
// returns the generated log id.
func (es *ExportService) Ingest(ctx context.Context, payload map[string]any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ingest encode failed: %w", err)
	}

	id := uuid.NewString()
	if err := es.repo.InsertIngestLog(ctx, id, time.Now().UTC(), data); err != nil {
		return "", err
	}

	return id, nil
}

// Health pings the database and returns the estimated company count.
func (es *ExportService) Health(ctx context.Context) (int64, error) {
	if err := es.repo.Ping(ctx); err != nil {
		return 0, err
	}

	return es.repo.EstimatedCount(ctx)
}
