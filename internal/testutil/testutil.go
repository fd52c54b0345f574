// Package testutil provides shared fixtures and skip helpers for tests.
//
// Skip helpers call tb.Skipf with a clear human-readable reason when the named
// prerequisite is absent, so tests that need real model assets or network
// access remain runnable in partial environments without failing noisily.
//
// Typical usage:
//
//	func TestSentencePiece(t *testing.T) {
//	    path := testutil.RequireModelFile(t, "tokenizer.model")
//	    ...
//	}
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// RequireModelFile walks up from the working directory looking for
// models/<name> and returns its path, skipping the test if it is absent.
func RequireModelFile(tb testing.TB, name string) string {
	tb.Helper()

	dir, err := filepath.Abs(".")
	if err != nil {
		tb.Skipf("cannot resolve working directory: %v", err)
		return ""
	}

	for {
		candidate := filepath.Join(dir, "models", name)

		_, err = os.Stat(candidate)
		if err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	tb.Skipf("models/%s not found; skipping", name)

	return ""
}

// RequireTiktoken skips the test unless tiktoken encodings can be loaded:
// either TIKTOKEN_CACHE_DIR points at an existing directory or
// MIATOK_NETWORK_TESTS=1 allows downloading them.
func RequireTiktoken(tb testing.TB) {
	tb.Helper()

	if os.Getenv("MIATOK_NETWORK_TESTS") == "1" {
		return
	}

	if dir := os.Getenv("TIKTOKEN_CACHE_DIR"); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return
		}
	}

	tb.Skipf("tiktoken encodings unavailable; set TIKTOKEN_CACHE_DIR or MIATOK_NETWORK_TESTS=1")
}

// WriteCorpus writes content to a corpus file in a fresh temp dir and returns its path.
func WriteCorpus(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "corpus.txt")

	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		tb.Fatalf("write corpus: %v", err)
	}

	return path
}
