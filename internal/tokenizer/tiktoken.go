package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TiktokenTokenizer wraps a tiktoken BPE encoding such as gpt2 or cl100k_base.
type TiktokenTokenizer struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenTokenizer resolves name as an encoding first and as a model name second.
func NewTiktokenTokenizer(name string) (*TiktokenTokenizer, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: tiktoken encoding name is required", ErrUnsupported)
	}

	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		enc, err = tiktoken.EncodingForModel(name)
		if err != nil {
			return nil, fmt.Errorf("%w: tiktoken encoding %q: %w", ErrUnsupported, name, err)
		}
	}

	return &TiktokenTokenizer{enc: enc}, nil
}

// Encode tokenizes text without special-token handling.
func (t *TiktokenTokenizer) Encode(text string) ([]int, error) {
	if text == "" {
		return []int{}, nil
	}
	return t.enc.Encode(text, nil, nil), nil
}

func (t *TiktokenTokenizer) Decode(ids []int) (string, error) {
	for i, id := range ids {
		if id < 0 {
			return "", fmt.Errorf("%w: unknown token id %d at position %d", ErrInvalidInput, id, i)
		}
	}
	return t.enc.Decode(ids), nil
}
