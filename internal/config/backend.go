package config

import (
	"fmt"

	"github.com/example/go-miatok/internal/tokenizer"
)

const (
	TokenizerMia           = tokenizer.BackendMia
	TokenizerTiktoken      = tokenizer.BackendTiktoken
	TokenizerSentencePiece = tokenizer.BackendSentencePiece
	TokenizerHF            = tokenizer.BackendHF

	DefaultTokenizerName = "tiktoken_gpt2"
)

// ParseTokenizerName splits raw with tokenizer.SplitName and validates the
// implementation. An empty name selects DefaultTokenizerName.
func ParseTokenizerName(raw string) (impl, model string, err error) {
	impl, model = tokenizer.SplitName(raw)
	if impl == "" && model == "" {
		impl, model = tokenizer.SplitName(DefaultTokenizerName)
	}

	switch impl {
	case TokenizerMia, TokenizerSentencePiece, TokenizerHF:
		return impl, model, nil
	case TokenizerTiktoken:
		if model == "" {
			return "", "", fmt.Errorf("tokenizer %q needs an encoding, e.g. tiktoken_gpt2", raw)
		}
		return impl, model, nil
	default:
		return "", "", fmt.Errorf(
			"invalid tokenizer %q (expected %s|%s_<encoding>|%s|%s)",
			raw,
			TokenizerMia,
			TokenizerTiktoken,
			TokenizerSentencePiece,
			TokenizerHF,
		)
	}
}

// NormalizeTokenizerName returns the canonical "<impl>[_<model>]" form of raw.
func NormalizeTokenizerName(raw string) (string, error) {
	impl, model, err := ParseTokenizerName(raw)
	if err != nil {
		return "", err
	}
	if model == "" {
		return impl, nil
	}
	return impl + "_" + model, nil
}
