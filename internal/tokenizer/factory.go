package tokenizer

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Backend implementation names accepted by Factory.
const (
	BackendMia           = "mia"
	BackendTiktoken      = "tiktoken"
	BackendSentencePiece = "sentencepiece"
	BackendHF            = "hf"
)

// Options carries the per-backend settings Factory hands to constructors.
type Options struct {
	CorpusPath         string
	AllowEmptyCorpus   bool
	SentencePieceModel string
	HFTokenizerPath    string
	Logger             *slog.Logger
}

// Constructor builds a backend for the given model part of a tokenizer name.
type Constructor func(model string, opts Options) (Tokenizer, error)

// Factory creates tokenizers by name. Names have the form
// "<implementation>" or "<implementation>_<model>".
type Factory struct {
	opts     Options
	registry map[string]Constructor
}

// NewFactory returns a Factory with all built-in backends registered.
func NewFactory(opts Options) *Factory {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	f := &Factory{opts: opts, registry: make(map[string]Constructor)}
	f.Register(BackendMia, newMiaBackend)
	f.Register(BackendTiktoken, newTiktokenBackend)
	f.Register(BackendSentencePiece, newSentencePieceBackend)
	f.Register(BackendHF, newHFBackend)

	return f
}

// Register adds or replaces the constructor for an implementation name.
func (f *Factory) Register(impl string, c Constructor) {
	f.registry[strings.ToLower(impl)] = c
}

// Backends returns the registered implementation names in sorted order.
func (f *Factory) Backends() []string {
	names := make([]string, 0, len(f.registry))
	for name := range f.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the tokenizer named by name and wraps it in a Logged decorator.
func (f *Factory) Create(name string) (Tokenizer, error) {
	impl, model := SplitName(name)
	f.opts.Logger.Info("creating tokenizer",
		slog.String("implementation", impl),
		slog.String("model", model),
	)

	build, ok := f.registry[impl]
	if !ok {
		f.opts.Logger.Error("tokenizer name not recognized", slog.String("name", name))
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnsupported, name, strings.Join(f.Backends(), ", "))
	}

	tok, err := build(model, f.opts)
	if err != nil {
		return nil, fmt.Errorf("create %s tokenizer: %w", impl, err)
	}

	return NewLogged(impl, tok, f.opts.Logger), nil
}

// SplitName lower-cases name and splits it at the first underscore into
// implementation and model, e.g. "tiktoken_cl100k_base" -> ("tiktoken", "cl100k_base").
func SplitName(name string) (impl, model string) {
	name = strings.ToLower(strings.TrimSpace(name))
	impl, model, _ = strings.Cut(name, "_")
	return impl, model
}

func newMiaBackend(_ string, opts Options) (Tokenizer, error) {
	return NewMiaTokenizer(opts.CorpusPath,
		WithAllowEmptyCorpus(opts.AllowEmptyCorpus),
		WithMiaLogger(opts.Logger),
	)
}

func newTiktokenBackend(model string, _ Options) (Tokenizer, error) {
	return NewTiktokenTokenizer(model)
}

func newSentencePieceBackend(_ string, opts Options) (Tokenizer, error) {
	return NewSentencePieceTokenizer(opts.SentencePieceModel)
}

func newHFBackend(_ string, opts Options) (Tokenizer, error) {
	return NewHFTokenizer(opts.HFTokenizerPath)
}
