package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"possales/internal"
	"possales/internal/config"
)

// Sink receives the normalized batch. Implementations must accept the whole
// batch or fail it; the pipeline never splits or partially retries a batch.
type Sink interface {
	InsertBatch(ctx context.Context, table string, records []internal.Record) error
}

// Supabase inserts batches through the PostgREST endpoint.
type Supabase struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

func NewSupabase(cfg config.Config) *Supabase {
	return &Supabase{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.SinkTimeoutMs) * time.Millisecond},
		limiter:    NewRateLimiter(cfg.SinkRateLimitRPS),
	}
}

func (s *Supabase) InsertBatch(ctx context.Context, table string, records []internal.Record) error {
	if len(records) == 0 {
		return nil
	}
	if strings.TrimSpace(s.cfg.SupabaseURL) == "" {
		return errors.New("missing SUPABASE_URL")
	}
	if strings.TrimSpace(s.cfg.SupabaseKey) == "" {
		return errors.New("missing SUPABASE_KEY")
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	endpoint := strings.TrimRight(s.cfg.SupabaseURL, "/") + "/rest/v1/" + table

	var lastErr error
	for attempt := 1; attempt <= 5; attempt++ {
		s.limiter.WaitTurn()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("apikey", s.cfg.SupabaseKey)
		req.Header.Set("Authorization", "Bearer "+s.cfg.SupabaseKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		if isRetryableStatus(resp.StatusCode) && attempt < 5 {
			backoff := time.Duration(250*(1<<(attempt-1))+rand.Intn(100)) * time.Millisecond
			time.Sleep(backoff)
			lastErr = fmt.Errorf("supabase status %d", resp.StatusCode)
			continue
		}
		return fmt.Errorf("supabase insert error: status=%d body=%s", resp.StatusCode, string(body))
	}

	if lastErr == nil {
		lastErr = errors.New("supabase request failed")
	}
	return lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}
