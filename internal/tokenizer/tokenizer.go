// Package tokenizer converts text into integer token ids and back.
//
// Several interchangeable backends satisfy the Tokenizer interface. The
// "mia" backend is self-contained: it builds a word/punctuation vocabulary
// from a reference corpus. The others wrap third-party encoders
// (tiktoken, SentencePiece, HuggingFace tokenizer.json). Factory selects a
// backend by name at runtime.
package tokenizer

import "errors"

// Tokenizer encodes text into token ids and decodes ids back into text.
type Tokenizer interface {
	// Encode tokenizes text and returns its token ids in order.
	Encode(text string) ([]int, error)
	// Decode maps token ids back into text.
	Decode(ids []int) (string, error)
}

var (
	// ErrResourceUnavailable is returned when a corpus or model file cannot be read.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrInvalidInput is returned for ids outside the vocabulary and for
	// corpora that are rejected by policy.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPath is returned when a file-backed backend is configured without a path.
	ErrEmptyPath = errors.New("tokenizer path must not be empty")

	// ErrUnsupported is returned by Factory for unknown backend names.
	ErrUnsupported = errors.New("unsupported tokenizer")
)
