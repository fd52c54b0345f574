package main

import (
	"fmt"

	"github.com/example/go-miatok/internal/config"
	"github.com/example/go-miatok/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the configured tokenizer's assets are in place",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			result := doctor.Run(doctorConfig(cfg), cmd.OutOrStdout())
			if result.Failed() {
				return fmt.Errorf("doctor found %d failure(s)", len(result.Failures()))
			}

			return nil
		},
	}
}

// doctorConfig selects the checks that apply to the configured backend.
func doctorConfig(cfg config.Config) doctor.Config {
	dcfg := doctor.Config{
		TokenizerName: cfg.Tokenizer.Name,
		ParseName: func(name string) (string, error) {
			impl, _, err := config.ParseTokenizerName(name)
			return impl, err
		},
		AllowEmptyCorpus: cfg.Tokenizer.AllowEmptyCorpus,
	}

	impl, _, err := config.ParseTokenizerName(cfg.Tokenizer.Name)
	if err != nil {
		return dcfg
	}

	switch impl {
	case config.TokenizerMia:
		dcfg.CorpusPath = cfg.Tokenizer.CorpusPath
	case config.TokenizerSentencePiece:
		dcfg.ModelFiles = []string{cfg.Tokenizer.SentencePieceModel}
	case config.TokenizerHF:
		dcfg.ModelFiles = []string{cfg.Tokenizer.HFTokenizerPath}
	}

	return dcfg
}
