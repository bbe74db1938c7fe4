package pipeline

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"possales/internal"
	"possales/internal/config"
	"possales/internal/connectors"
	"possales/internal/menu"
	"possales/internal/sink"
	"possales/internal/storage"
)

type ProcessingService struct {
	db          *storage.DB
	cfg         config.Config
	source      connectors.FileSource
	store       *connectors.ReportStore
	uploader    sink.Sink
	transformer *Transformer
}

func NewProcessingService(db *storage.DB, cfg config.Config, source connectors.FileSource, uploader sink.Sink) *ProcessingService {
	return &ProcessingService{
		db:          db,
		cfg:         cfg,
		source:      source,
		store:       connectors.NewReportStore(db, cfg.RawReportDir),
		uploader:    uploader,
		transformer: NewTransformer(cfg.SheetName, menu.Default()),
	}
}

type RunResult struct {
	Files    int
	Skipped  int
	Uploaded int
}

// Run executes one full pipeline pass. Every pending source file is pulled,
// transformed, and archived at the source once its transform succeeds; files
// that cannot be read or parsed are skipped with a diagnostic. The combined
// batch goes to the sink in one shot, and a sink failure fails the run.
func (s *ProcessingService) Run(ctx context.Context) (RunResult, error) {
	start := time.Now()

	files, err := s.source.ListPending()
	if err != nil {
		return RunResult{}, err
	}
	if len(files) == 0 {
		fmt.Println("no pending reports found")
		return RunResult{}, nil
	}

	result := RunResult{Files: len(files)}
	batch := []internal.LineItem{}
	for _, file := range files {
		fmt.Printf("processing: %s\n", file.Name)

		content, err := s.source.ReadContent(file.ID)
		if err != nil {
			fmt.Printf("skipping %s: read failed: %v\n", file.Name, err)
			result.Skipped++
			continue
		}
		row, err := s.store.Store(s.source.Provider(), file, content)
		if err != nil {
			return result, err
		}

		items, err := s.transformer.TransformWorkbook(content, file.Name)
		if err != nil {
			fmt.Printf("skipping %s: %v\n", file.Name, err)
			_ = s.db.UpdateFileStatus(row.ID, "skipped", 0)
			result.Skipped++
			continue
		}
		if len(items) == 0 {
			fmt.Printf("skipping %s: no data rows\n", file.Name)
			_ = s.db.UpdateFileStatus(row.ID, "skipped", 0)
			result.Skipped++
			continue
		}

		if err := s.source.MarkProcessed(file.ID); err != nil {
			return result, err
		}
		_ = s.db.UpdateFileStatus(row.ID, "archived", len(items))
		fmt.Printf("   -> archived %s (%d rows)\n", file.Name, len(items))
		batch = append(batch, items...)
	}

	if len(batch) == 0 {
		fmt.Println("no valid data processed")
		s.recordRun(start, result, 0)
		return result, nil
	}

	records := SanitizeRecords(BuildRecords(batch))
	fmt.Printf("uploading %d rows to %s...\n", len(records), s.cfg.SinkTable)
	if err := s.uploader.InsertBatch(ctx, s.cfg.SinkTable, records); err != nil {
		s.recordRun(start, result, 0)
		return result, err
	}
	result.Uploaded = len(records)

	s.recordRun(start, result, len(records))
	return result, nil
}

func (s *ProcessingService) recordRun(start time.Time, result RunResult, uploaded int) {
	counts := map[string]int{
		"files":    result.Files,
		"skipped":  result.Skipped,
		"uploaded": uploaded,
	}
	timings := map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())}
	_ = s.db.InsertRun(traceID(), counts, timings)
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
