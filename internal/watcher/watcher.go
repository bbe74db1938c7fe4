package watcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"possales/internal/config"
	"possales/internal/connectors"
	driveconnector "possales/internal/connectors/drive"
	imapconnector "possales/internal/connectors/imap"
	"possales/internal/pipeline"
	"possales/internal/sink"
	"possales/internal/storage"
)

// Service runs the pipeline on an interval. A failed cycle is logged and the
// next one proceeds; only context cancellation stops the loop.
type Service struct {
	db  *storage.DB
	cfg config.Config
}

func NewService(db *storage.DB, cfg config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runCycle(ctx); err != nil {
			fmt.Printf("watcher cycle error: %v\n", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.WatchIntervalSec) * time.Second):
		}
	}
}

func (s *Service) runCycle(ctx context.Context) error {
	provider := strings.ToLower(strings.TrimSpace(s.cfg.SourceProvider))
	source, err := s.makeSource(provider)
	if err != nil {
		return err
	}

	processor := pipeline.NewProcessingService(s.db, s.cfg, source, sink.NewSupabase(s.cfg))
	result, err := processor.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("watcher cycle done provider=%s files=%d skipped=%d uploaded=%d\n", provider, result.Files, result.Skipped, result.Uploaded)
	_ = s.db.SetMetadata("watcher.last_cycle", time.Now().UTC().Format(time.RFC3339))
	return nil
}

func (s *Service) makeSource(provider string) (connectors.FileSource, error) {
	switch provider {
	case "drive":
		return driveconnector.NewConnector(s.cfg)
	case "imap":
		return imapconnector.NewConnector(s.cfg)
	default:
		return nil, fmt.Errorf("unsupported watcher provider: %s", provider)
	}
}
