package sink

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"possales/internal"
	"possales/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func testSupabase(rt roundTripFunc) *Supabase {
	return &Supabase{
		cfg: config.Config{
			SupabaseURL: "https://example.supabase.co",
			SupabaseKey: "secret-key",
		},
		httpClient: &http.Client{Transport: rt, Timeout: 5 * time.Second},
		limiter:    NewRateLimiter(1000),
	}
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

func TestInsertBatch(t *testing.T) {
	var captured *http.Request
	var payload []internal.Record

	s := testSupabase(func(r *http.Request) (*http.Response, error) {
		captured = r
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		return respond(201, ""), nil
	})

	records := []internal.Record{{"order_id": "1001", "items": "Latte"}}
	if err := s.InsertBatch(context.Background(), "fact_sales2026", records); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if captured.URL.String() != "https://example.supabase.co/rest/v1/fact_sales2026" {
		t.Fatalf("url = %s", captured.URL)
	}
	if captured.Header.Get("apikey") != "secret-key" {
		t.Fatalf("apikey header = %q", captured.Header.Get("apikey"))
	}
	if captured.Header.Get("Authorization") != "Bearer secret-key" {
		t.Fatalf("authorization header = %q", captured.Header.Get("Authorization"))
	}
	if captured.Header.Get("Prefer") != "return=minimal" {
		t.Fatalf("prefer header = %q", captured.Header.Get("Prefer"))
	}
	if len(payload) != 1 || payload[0]["items"] != "Latte" {
		t.Fatalf("payload = %v", payload)
	}
}

func TestInsertBatchRetriesOnServerError(t *testing.T) {
	attempts := 0
	s := testSupabase(func(r *http.Request) (*http.Response, error) {
		attempts++
		if attempts == 1 {
			return respond(503, "unavailable"), nil
		}
		return respond(201, ""), nil
	})

	err := s.InsertBatch(context.Background(), "fact_sales2026", []internal.Record{{"order_id": "1"}})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d", attempts)
	}
}

func TestInsertBatchFailsOnClientError(t *testing.T) {
	attempts := 0
	s := testSupabase(func(r *http.Request) (*http.Response, error) {
		attempts++
		return respond(400, `{"message":"bad column"}`), nil
	})

	err := s.InsertBatch(context.Background(), "fact_sales2026", []internal.Record{{"order_id": "1"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("client errors must not retry, attempts = %d", attempts)
	}
	if !strings.Contains(err.Error(), "status=400") || !strings.Contains(err.Error(), "bad column") {
		t.Fatalf("error = %v", err)
	}
}

func TestInsertBatchEmpty(t *testing.T) {
	s := testSupabase(func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected for an empty batch")
		return nil, nil
	})

	if err := s.InsertBatch(context.Background(), "fact_sales2026", nil); err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func TestInsertBatchMissingConfig(t *testing.T) {
	s := NewSupabase(config.Config{SinkTimeoutMs: 1000, SinkRateLimitRPS: 5})
	err := s.InsertBatch(context.Background(), "fact_sales2026", []internal.Record{{"order_id": "1"}})
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
}
