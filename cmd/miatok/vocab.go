package main

import (
	"errors"
	"strconv"

	"github.com/example/go-miatok/internal/tokenizer"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List the mia tokenizer vocabulary built from the corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			tok, err := newTokenizer(cfg)
			if err != nil {
				return err
			}

			mia, ok := unwrapMia(tok)
			if !ok {
				return errors.New("vocab listing requires the mia tokenizer (--tokenizer-name=mia)")
			}

			tokens := mia.Vocabulary().Tokens()
			if limit > 0 && limit < len(tokens) {
				tokens = tokens[:limit]
			}

			var data [][]string
			for id, s := range tokens {
				data = append(data, []string{strconv.Itoa(id), s})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "TOKEN"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the first N entries (0 = all)")

	return cmd
}

func unwrapMia(tok tokenizer.Tokenizer) (*tokenizer.MiaTokenizer, bool) {
	if l, ok := tok.(*tokenizer.Logged); ok {
		tok = l.Unwrap()
	}
	mia, ok := tok.(*tokenizer.MiaTokenizer)
	return mia, ok
}
