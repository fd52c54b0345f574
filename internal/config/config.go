package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Server    ServerConfig    `mapstructure:"server"`
}

type TokenizerConfig struct {
	Name               string `mapstructure:"name"`
	CorpusPath         string `mapstructure:"corpus_path"`
	AllowEmptyCorpus   bool   `mapstructure:"allow_empty_corpus"`
	SentencePieceModel string `mapstructure:"sentencepiece_model"`
	HFTokenizerPath    string `mapstructure:"hf_tokenizer_path"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Tokenizer: TokenizerConfig{
			Name:               DefaultTokenizerName,
			CorpusPath:         "data/corpus.txt",
			AllowEmptyCorpus:   true,
			SentencePieceModel: "models/tokenizer.model",
			HFTokenizerPath:    "models/tokenizer.json",
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    65536,
			ShutdownTimeout: 30,
		},
	}
}

// flagKeys maps each flag name to the config key it overrides.
var flagKeys = []struct {
	flag string
	key  string
}{
	{"log-level", "log_level"},
	{"tokenizer-name", "tokenizer.name"},
	{"corpus-path", "tokenizer.corpus_path"},
	{"allow-empty-corpus", "tokenizer.allow_empty_corpus"},
	{"sentencepiece-model", "tokenizer.sentencepiece_model"},
	{"hf-tokenizer-path", "tokenizer.hf_tokenizer_path"},
	{"server-listen-addr", "server.listen_addr"},
	{"max-text-bytes", "server.max_text_bytes"},
	{"shutdown-timeout", "server.shutdown_timeout"},
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("tokenizer-name", defaults.Tokenizer.Name, "Tokenizer to use, formatted as <implementation>[_<model>], e.g. mia or tiktoken_gpt2")
	fs.String("corpus-path", defaults.Tokenizer.CorpusPath, "Reference corpus for the mia tokenizer vocabulary")
	fs.Bool("allow-empty-corpus", defaults.Tokenizer.AllowEmptyCorpus, "Accept a corpus without tokens (sentinel-only vocabulary)")
	fs.String("sentencepiece-model", defaults.Tokenizer.SentencePieceModel, "Path to SentencePiece .model file")
	fs.String("hf-tokenizer-path", defaults.Tokenizer.HFTokenizerPath, "Path to HuggingFace tokenizer.json")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("max-text-bytes", defaults.Server.MaxTextBytes, "Maximum text size accepted by POST /encode")
	fs.Int("shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)

	v.SetEnvPrefix("MIATOK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("miatok")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// bindFlags binds each known flag to its nested key. Unchanged flags only
// supply defaults, so config file and env values still win over them.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, fk := range flagKeys {
		f := fs.Lookup(fk.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(fk.key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", fk.flag, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("tokenizer.name", c.Tokenizer.Name)
	v.SetDefault("tokenizer.corpus_path", c.Tokenizer.CorpusPath)
	v.SetDefault("tokenizer.allow_empty_corpus", c.Tokenizer.AllowEmptyCorpus)
	v.SetDefault("tokenizer.sentencepiece_model", c.Tokenizer.SentencePieceModel)
	v.SetDefault("tokenizer.hf_tokenizer_path", c.Tokenizer.HFTokenizerPath)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
}
