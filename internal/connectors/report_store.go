package connectors

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"possales/internal"
	"possales/internal/storage"
)

// ReportStore keeps a content-addressed local copy of every downloaded
// workbook and tracks it in the files ledger, so a report can be inspected
// or replayed after the source copy is archived.
type ReportStore struct {
	db           *storage.DB
	rawReportDir string
}

func NewReportStore(db *storage.DB, rawReportDir string) *ReportStore {
	return &ReportStore{db: db, rawReportDir: rawReportDir}
}

func (s *ReportStore) Store(provider string, file internal.SourceFile, content []byte) (internal.FileRow, error) {
	hashBytes := sha256.Sum256(content)
	hash := hex.EncodeToString(hashBytes[:])

	if err := os.MkdirAll(s.rawReportDir, 0o755); err != nil {
		return internal.FileRow{}, err
	}

	rawPath := filepath.Join(s.rawReportDir, hash+".xlsx")
	if _, err := os.Stat(rawPath); os.IsNotExist(err) {
		if err := os.WriteFile(rawPath, content, 0o644); err != nil {
			return internal.FileRow{}, err
		}
	}

	return s.db.UpsertFile(provider, file.ID, file.Name, hash, rawPath, "fetched")
}
