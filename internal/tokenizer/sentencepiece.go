package tokenizer

import (
	"fmt"
	"os"
	"strings"

	gosp "github.com/vikesh-raj/go-sentencepiece-encoder/sentencepiece"
	"google.golang.org/protobuf/proto"
)

// spSep is the SentencePiece word-start marker (U+2581).
const spSep = "▁"

// SentencePieceTokenizer implements Tokenizer using a pure-Go UNIGRAM SentencePiece model.
type SentencePieceTokenizer struct {
	proc    gosp.Sentencepiece
	pieces  []string
	control map[int]bool
}

// NewSentencePieceTokenizer loads a SentencePiece model from the given path.
func NewSentencePieceTokenizer(modelPath string) (*SentencePieceTokenizer, error) {
	if modelPath == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read sentencepiece model %q: %w", ErrResourceUnavailable, modelPath, err)
	}

	var model gosp.ModelProto
	if err := proto.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("unmarshal sentencepiece model %q: %w", modelPath, err)
	}

	proc, err := gosp.NewSentencepieceFromFile(modelPath, false)
	if err != nil {
		return nil, fmt.Errorf("load sentencepiece model %q: %w", modelPath, err)
	}

	t := &SentencePieceTokenizer{
		proc:    proc,
		pieces:  make([]string, len(model.GetPieces())),
		control: make(map[int]bool),
	}
	for i, piece := range model.GetPieces() {
		t.pieces[i] = piece.GetPiece()
		if piece.GetType() == gosp.ModelProto_SentencePiece_CONTROL {
			t.control[i] = true
		}
	}

	return t, nil
}

// Encode tokenizes text and returns SentencePiece token ids.
func (t *SentencePieceTokenizer) Encode(text string) ([]int, error) {
	if text == "" {
		return []int{}, nil
	}

	ids := t.proc.TokenizeToIDs(text)

	result := make([]int, len(ids))
	for i, id := range ids {
		result[i] = int(id)
	}

	return result, nil
}

// Decode concatenates the pieces for ids, skipping control pieces, and turns
// word-start markers back into spaces.
func (t *SentencePieceTokenizer) Decode(ids []int) (string, error) {
	var sb strings.Builder
	for i, id := range ids {
		if id < 0 || id >= len(t.pieces) {
			return "", fmt.Errorf("%w: unknown token id %d at position %d", ErrInvalidInput, id, i)
		}
		if t.control[id] {
			continue
		}
		sb.WriteString(t.pieces[id])
	}

	out := strings.ReplaceAll(sb.String(), spSep, " ")

	return strings.TrimPrefix(out, " "), nil
}
