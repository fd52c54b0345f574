package main

import (
	"fmt"
	"log/slog"

	"github.com/example/go-miatok/internal/tokenizer"
	"github.com/spf13/cobra"
)

type roundTripResult struct {
	IDs     []int
	Decoded string
	Exact   bool
}

func newRoundtripCmd() *cobra.Command {
	var sampleText string

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Encode and decode sample text and report whether it survived unchanged",
		Long: `Encodes --sample-text with the configured tokenizer, decodes the ids again
and compares the result with the input. A mismatch caused by out-of-vocabulary
words (decoded as <|unk|>) is reported but is not an error.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			tok, err := newTokenizer(cfg)
			if err != nil {
				return err
			}

			res, err := roundTrip(tok, sampleText)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "ids: %v\n", res.IDs)
			_, _ = fmt.Fprintf(out, "decoded: %s\n", res.Decoded)
			_, err = fmt.Fprintf(out, "exact: %t\n", res.Exact)
			return err
		},
	}

	cmd.Flags().StringVar(&sampleText, "sample-text", "", "Sample text to tokenize")
	_ = cmd.MarkFlagRequired("sample-text")

	return cmd
}

func roundTrip(tok tokenizer.Tokenizer, text string) (roundTripResult, error) {
	slog.Info("sample text to encode", slog.String("text", text))

	ids, err := tok.Encode(text)
	if err != nil {
		return roundTripResult{}, fmt.Errorf("encode: %w", err)
	}
	slog.Info("encoded sample text", slog.Any("ids", ids))

	decoded, err := tok.Decode(ids)
	if err != nil {
		return roundTripResult{}, fmt.Errorf("decode: %w", err)
	}
	slog.Info("decoded token ids", slog.String("text", decoded))

	res := roundTripResult{IDs: ids, Decoded: decoded, Exact: decoded == text}
	if res.Exact {
		slog.Info("round trip exact")
	} else {
		slog.Info("round trip lossy; out-of-vocabulary words decode as the unknown token",
			slog.String("unknown_token", tokenizer.UnknownToken),
		)
	}

	return res, nil
}
