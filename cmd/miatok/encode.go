package main

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/example/go-miatok/internal/tokenizer"
	"github.com/spf13/cobra"
)

// negativeIDFlag matches the pflag error for an argument such as "-1".
var negativeIDFlag = regexp.MustCompile(`unknown shorthand flag: '\d' in -\d+`)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode TEXT",
		Short: "Print the token ids of TEXT as a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			tok, err := newTokenizer(cfg)
			if err != nil {
				return err
			}

			ids, err := tok.Encode(args[0])
			if err != nil {
				return err
			}
			if ids == nil {
				ids = []int{}
			}

			data, err := json.Marshal(ids)
			if err != nil {
				return fmt.Errorf("marshal ids: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [--] ID...",
		Short: "Print the text for a sequence of token ids",
		Long: "Print the text for a sequence of token ids.\n\n" +
			"Ids starting with '-' must follow \"--\" so they are not read as flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			tok, err := newTokenizer(cfg)
			if err != nil {
				return err
			}

			text, err := tok.Decode(ids)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if negativeIDFlag.MatchString(err.Error()) {
			return fmt.Errorf("%w: negative token id; pass ids after \"--\": %w", tokenizer.ErrInvalidInput, err)
		}
		return err
	})

	return cmd
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("token id %q: %w", arg, err)
		}
		ids[i] = id
	}
	return ids, nil
}
