package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/go-miatok/internal/server"
	"github.com/example/go-miatok/internal/tokenizer"
)

// stubTokenizer implements tokenizer.Tokenizer for tests.
type stubTokenizer struct {
	ids  []int
	text string
	err  error
}

func (s *stubTokenizer) Encode(string) ([]int, error) { return s.ids, s.err }
func (s *stubTokenizer) Decode([]int) (string, error) { return s.text, s.err }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMia(t *testing.T) *tokenizer.MiaTokenizer {
	t.Helper()

	tok, err := tokenizer.NewMiaTokenizerFromText("Hello, world. Hello!",
		tokenizer.WithMiaLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewMiaTokenizerFromText: %v", err)
	}

	return tok
}

func newMiaHandler(t *testing.T, opts ...server.Option) http.Handler {
	t.Helper()

	return server.NewHandler(newMia(t), append([]server.Option{server.WithLogger(quietLogger())}, opts...)...)
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	h.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// GET /health
// ---------------------------------------------------------------------------

func TestHealth_Returns200WithStatusOK(t *testing.T) {
	h := server.NewHandler(&stubTokenizer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var body map[string]string
	err := json.NewDecoder(rec.Body).Decode(&body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("want status=ok, got %q", body["status"])
	}

	if _, ok := body["version"]; !ok {
		t.Error("want version field in response")
	}
}

// ---------------------------------------------------------------------------
// POST /encode
// ---------------------------------------------------------------------------

func TestEncode_ReturnsIDs(t *testing.T) {
	h := newMiaHandler(t)

	rec := post(h, "/encode", `{"text":"Hello, there!"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	want := []int{3, 1, 6, 0}
	if len(body.IDs) != len(want) {
		t.Fatalf("ids = %v; want %v", body.IDs, want)
	}

	for i := range want {
		if body.IDs[i] != want[i] {
			t.Fatalf("ids = %v; want %v", body.IDs, want)
		}
	}
}

func TestEncode_EmptyTextReturnsEmptyArray(t *testing.T) {
	h := newMiaHandler(t)

	rec := post(h, "/encode", `{"text":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	if got := strings.TrimSpace(rec.Body.String()); got != `{"ids":[]}` {
		t.Errorf("body = %s; want {\"ids\":[]}", got)
	}
}

func TestEncode_MethodNotAllowed(t *testing.T) {
	h := newMiaHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/encode", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("want 405, got %d", rec.Code)
	}
}

func TestEncode_InvalidJSON(t *testing.T) {
	h := newMiaHandler(t)

	rec := post(h, "/encode", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("want 400, got %d", rec.Code)
	}
}

func TestEncode_TextTooLarge(t *testing.T) {
	h := newMiaHandler(t, server.WithMaxTextBytes(5))

	rec := post(h, "/encode", `{"text":"Hello, world."}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("want 413, got %d", rec.Code)
	}
}

func TestEncode_BackendError(t *testing.T) {
	h := server.NewHandler(&stubTokenizer{err: errors.New("backend down")}, server.WithLogger(quietLogger()))

	rec := post(h, "/encode", `{"text":"x"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("want 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /decode
// ---------------------------------------------------------------------------

func TestDecode_ReturnsText(t *testing.T) {
	h := newMiaHandler(t)

	rec := post(h, "/decode", `{"ids":[3,1,4,2]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.Text != "Hello, world." {
		t.Errorf("text = %q; want %q", body.Text, "Hello, world.")
	}
}

func TestDecode_UnknownIDIsBadRequest(t *testing.T) {
	h := newMiaHandler(t)

	for _, body := range []string{`{"ids":[7]}`, `{"ids":[-1]}`} {
		rec := post(h, "/decode", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: want 400, got %d", body, rec.Code)
		}

		if !strings.Contains(rec.Body.String(), "unknown token id") {
			t.Errorf("%s: body %q does not mention unknown token id", body, rec.Body.String())
		}
	}
}

func TestDecode_BackendError(t *testing.T) {
	h := server.NewHandler(&stubTokenizer{err: errors.New("backend down")}, server.WithLogger(quietLogger()))

	rec := post(h, "/decode", `{"ids":[1]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("want 500, got %d", rec.Code)
	}
}

func TestDecode_MethodNotAllowed(t *testing.T) {
	h := newMiaHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/decode", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("want 405, got %d", rec.Code)
	}
}
