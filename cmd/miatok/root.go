package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/example/go-miatok/internal/config"
	"github.com/example/go-miatok/internal/server"
	"github.com/example/go-miatok/internal/tokenizer"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "miatok",
		Short:         "Text tokenization with interchangeable backends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newRoundtripCmd())
	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newVocabCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Tokenizer.Name == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// newTokenizer builds the backend selected by cfg.Tokenizer.Name.
func newTokenizer(cfg config.Config) (tokenizer.Tokenizer, error) {
	name, err := config.NormalizeTokenizerName(cfg.Tokenizer.Name)
	if err != nil {
		return nil, err
	}

	f := tokenizer.NewFactory(tokenizer.Options{
		CorpusPath:         cfg.Tokenizer.CorpusPath,
		AllowEmptyCorpus:   cfg.Tokenizer.AllowEmptyCorpus,
		SentencePieceModel: cfg.Tokenizer.SentencePieceModel,
		HFTokenizerPath:    cfg.Tokenizer.HFTokenizerPath,
		Logger:             slog.Default(),
	})

	return f.Create(name)
}
