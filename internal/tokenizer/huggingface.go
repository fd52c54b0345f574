package tokenizer

import (
	"fmt"
	"os"

	hftk "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// HFTokenizer wraps a HuggingFace-compatible tokenizer.json.
type HFTokenizer struct {
	inner *hftk.Tokenizer
}

// NewHFTokenizer loads a tokenizer.json file using the pure-Go tokenizer.
func NewHFTokenizer(path string) (*HFTokenizer, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: tokenizer.json %q: %w", ErrResourceUnavailable, path, err)
	}

	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer.json %q: %w", path, err)
	}

	return &HFTokenizer{inner: tk}, nil
}

// Encode returns token ids without added special tokens.
func (t *HFTokenizer) Encode(text string) ([]int, error) {
	if text == "" {
		return []int{}, nil
	}

	enc, err := t.inner.EncodeSingle(text, false)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return append([]int(nil), enc.Ids...), nil
}

// Decode skips special tokens.
func (t *HFTokenizer) Decode(ids []int) (string, error) {
	size := t.inner.GetVocabSize(true)
	for i, id := range ids {
		if id < 0 || id >= size {
			return "", fmt.Errorf("%w: unknown token id %d at position %d", ErrInvalidInput, id, i)
		}
	}

	return t.inner.Decode(ids, true), nil
}
