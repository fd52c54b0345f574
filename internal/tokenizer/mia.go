package tokenizer

import (
	"fmt"
	"log/slog"
)

// MiaOption configures a MiaTokenizer.
type MiaOption func(*miaOptions)

type miaOptions struct {
	allowEmpty bool
	logger     *slog.Logger
}

// WithAllowEmptyCorpus controls whether a corpus without any token is
// accepted as a vocabulary holding only the two sentinels. Defaults to true.
func WithAllowEmptyCorpus(allow bool) MiaOption {
	return func(o *miaOptions) { o.allowEmpty = allow }
}

// WithMiaLogger sets the logger used by the tokenizer.
func WithMiaLogger(l *slog.Logger) MiaOption {
	return func(o *miaOptions) { o.logger = l }
}

// MiaTokenizer is the vocabulary-based word/punctuation tokenizer. Words
// absent from the vocabulary encode to the unknown sentinel, so decoding is
// lossy for them.
type MiaTokenizer struct {
	vocab *Vocabulary
	log   *slog.Logger
}

// NewMiaTokenizer builds a tokenizer from the corpus file at corpusPath.
func NewMiaTokenizer(corpusPath string, optFns ...MiaOption) (*MiaTokenizer, error) {
	opts := miaOptions{allowEmpty: true}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.logger == nil {
		opts.logger = slog.Default()
	}

	opts.logger.Info("building vocabulary from corpus", slog.String("path", corpusPath))

	vocab, err := LoadVocabulary(corpusPath)
	if err != nil {
		return nil, err
	}

	return newMiaTokenizer(vocab, opts)
}

// NewMiaTokenizerFromText builds a tokenizer from an in-memory corpus.
func NewMiaTokenizerFromText(corpus string, optFns ...MiaOption) (*MiaTokenizer, error) {
	opts := miaOptions{allowEmpty: true}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.logger == nil {
		opts.logger = slog.Default()
	}

	return newMiaTokenizer(BuildVocabulary(corpus), opts)
}

func newMiaTokenizer(vocab *Vocabulary, opts miaOptions) (*MiaTokenizer, error) {
	if vocab.corpusSize() == 0 {
		if !opts.allowEmpty {
			return nil, fmt.Errorf("%w: corpus yields no tokens", ErrInvalidInput)
		}
		opts.logger.Warn("corpus yields no tokens; vocabulary holds only sentinels")
	}

	opts.logger.Info("vocabulary ready", slog.Int("size", vocab.Size()))

	return &MiaTokenizer{vocab: vocab, log: opts.logger}, nil
}

// Vocabulary returns the tokenizer's read-only vocabulary.
func (t *MiaTokenizer) Vocabulary() *Vocabulary { return t.vocab }

// Encode never fails: fragments missing from the vocabulary map to the
// unknown sentinel id.
func (t *MiaTokenizer) Encode(text string) ([]int, error) {
	fragments := Segment(text)
	ids := make([]int, len(fragments))

	unknown := 0
	for i, frag := range fragments {
		id, ok := t.vocab.ID(frag)
		if !ok {
			id = t.vocab.UnknownID()
			unknown++
		}
		ids[i] = id
	}

	if unknown > 0 {
		t.log.Info("out-of-vocabulary fragments replaced",
			slog.Int("count", unknown),
			slog.String("token", UnknownToken),
		)
	}

	return ids, nil
}

// Decode joins the token strings for ids and restores punctuation spacing.
// Any id outside the vocabulary fails the whole call.
func (t *MiaTokenizer) Decode(ids []int) (string, error) {
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tok, ok := t.vocab.Token(id)
		if !ok {
			return "", fmt.Errorf("%w: unknown token id %d at position %d", ErrInvalidInput, id, i)
		}
		tokens[i] = tok
	}

	return joinTokens(tokens), nil
}
