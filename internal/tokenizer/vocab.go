package tokenizer

import (
	"fmt"
	"os"
	"sort"
)

// Sentinel tokens appended after every corpus-derived token, in this order.
const (
	EndOfTextToken = "<|eot|>"
	UnknownToken   = "<|unk|>"
)

// Vocabulary is an immutable bijection between token strings and dense ids.
// It is safe for concurrent readers.
type Vocabulary struct {
	toID  map[string]int
	toStr []string
}

// BuildVocabulary segments corpus, sorts the distinct fragments by byte
// order and appends the end-of-text and unknown sentinels. Ids are assigned
// in that order, so rebuilding from the same corpus yields the same ids.
func BuildVocabulary(corpus string) *Vocabulary {
	seen := make(map[string]struct{})
	for _, tok := range Segment(corpus) {
		seen[tok] = struct{}{}
	}

	tokens := make([]string, 0, len(seen)+2)
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	// A corpus containing a sentinel literal must not produce a duplicate entry.
	tokens = removeToken(tokens, EndOfTextToken)
	tokens = removeToken(tokens, UnknownToken)
	tokens = append(tokens, EndOfTextToken, UnknownToken)

	toID := make(map[string]int, len(tokens))
	for id, tok := range tokens {
		toID[tok] = id
	}

	return &Vocabulary{toID: toID, toStr: tokens}
}

// LoadVocabulary reads the corpus file at path and builds a vocabulary from it.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read corpus %q: %w", ErrResourceUnavailable, path, err)
	}

	return BuildVocabulary(string(data)), nil
}

func removeToken(tokens []string, tok string) []string {
	i := sort.SearchStrings(tokens, tok)
	if i < len(tokens) && tokens[i] == tok {
		return append(tokens[:i], tokens[i+1:]...)
	}
	return tokens
}

// Size returns the number of entries, sentinels included.
func (v *Vocabulary) Size() int { return len(v.toStr) }

// ID returns the id of tok and whether tok is in the vocabulary.
func (v *Vocabulary) ID(tok string) (int, bool) {
	id, ok := v.toID[tok]
	return id, ok
}

// Token returns the string for id and whether id is in range.
func (v *Vocabulary) Token(id int) (string, bool) {
	if id < 0 || id >= len(v.toStr) {
		return "", false
	}
	return v.toStr[id], true
}

// Tokens returns a copy of all token strings ordered by id.
func (v *Vocabulary) Tokens() []string {
	return append([]string(nil), v.toStr...)
}

// EndOfTextID returns the id of the end-of-text sentinel.
func (v *Vocabulary) EndOfTextID() int { return len(v.toStr) - 2 }

// UnknownID returns the id of the unknown-word sentinel.
func (v *Vocabulary) UnknownID() int { return len(v.toStr) - 1 }

// corpusSize is the number of corpus-derived entries.
func (v *Vocabulary) corpusSize() int { return len(v.toStr) - 2 }
