package server_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/example/go-miatok/internal/server"
)

// capturingHandler captures all slog records during a test.
type capturingHandler struct {
	records []slog.Record
}

func (c *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }
func (c *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	c.records = append(c.records, r)
	return nil
}
func (c *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return c }
func (c *capturingHandler) WithGroup(_ string) slog.Handler      { return c }

func (c *capturingHandler) attrMap(idx int) map[string]any {
	m := make(map[string]any)
	c.records[idx].Attrs(func(a slog.Attr) bool {
		m[a.Key] = a.Value.Any()
		return true
	})
	return m
}

func TestEncode_LogsTextLenAndTokens(t *testing.T) {
	capture := &capturingHandler{}
	h := server.NewHandler(&stubTokenizer{ids: []int{1, 2, 3}}, server.WithLogger(slog.New(capture)))

	rec := post(h, "/encode", `{"text":"Hello world."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	if len(capture.records) != 1 {
		t.Fatalf("want 1 log record, got %d", len(capture.records))
	}

	if capture.records[0].Level != slog.LevelInfo {
		t.Errorf("level = %v; want info", capture.records[0].Level)
	}

	attrs := capture.attrMap(0)
	if attrs["text_len"] != int64(12) {
		t.Errorf("text_len = %v; want 12", attrs["text_len"])
	}

	if attrs["tokens"] != int64(3) {
		t.Errorf("tokens = %v; want 3", attrs["tokens"])
	}
}

func TestDecode_InvalidIDLogsWarn(t *testing.T) {
	capture := &capturingHandler{}
	h := server.NewHandler(newMia(t), server.WithLogger(slog.New(capture)))

	rec := post(h, "/decode", `{"ids":[99]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}

	if len(capture.records) != 1 || capture.records[0].Level != slog.LevelWarn {
		t.Fatalf("want a single warn record, got %d records", len(capture.records))
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		wantLvl slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"WARNING", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, false}, // default
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := server.ParseLogLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) err = %v; wantErr %v", tt.input, err, tt.wantErr)
		}

		if got != tt.wantLvl {
			t.Errorf("ParseLogLevel(%q) = %v; want %v", tt.input, got, tt.wantLvl)
		}
	}
}
