package tokenizer

import "log/slog"

// Logged decorates a Tokenizer with request logging.
type Logged struct {
	name  string
	inner Tokenizer
	log   *slog.Logger
}

// NewLogged wraps inner; name identifies the backend in log records.
func NewLogged(name string, inner Tokenizer, logger *slog.Logger) *Logged {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logged{name: name, inner: inner, log: logger.With(slog.String("backend", name))}
}

// Name returns the backend implementation name.
func (l *Logged) Name() string { return l.name }

// Unwrap returns the decorated tokenizer.
func (l *Logged) Unwrap() Tokenizer { return l.inner }

func (l *Logged) Encode(text string) ([]int, error) {
	l.log.Debug("encoding text", slog.Int("text_len", len(text)))

	ids, err := l.inner.Encode(text)
	if err != nil {
		l.log.Error("encode failed", slog.String("error", err.Error()))
		return nil, err
	}

	l.log.Debug("encoded text", slog.Int("tokens", len(ids)))
	return ids, nil
}

func (l *Logged) Decode(ids []int) (string, error) {
	l.log.Debug("decoding token ids", slog.Int("tokens", len(ids)))

	text, err := l.inner.Decode(ids)
	if err != nil {
		l.log.Error("decode failed", slog.String("error", err.Error()))
		return "", err
	}

	return text, nil
}
