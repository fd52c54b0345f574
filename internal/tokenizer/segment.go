package tokenizer

import (
	"regexp"
	"strings"
)

// space is every character unicode.IsSpace accepts plus the ASCII
// separators U+001C..U+001F. RE2's \s alone covers only [\t\n\f\r ].
const space = `[\s\x0b\x1c-\x1f\x85\p{Z}]`

// splitPattern matches the delimiters that end a token. Punctuation matches
// are kept as tokens of their own, whitespace matches are dropped.
var splitPattern = regexp.MustCompile(`[,.:;?!"'()—]|--|` + space)

// joinPattern matches the space the decoder inserted before punctuation.
var joinPattern = regexp.MustCompile(space + `+([,.:;?!"'()])`)

// dashPattern matches a dash token and the spaces the decoder put around it.
// Dashes are written closed up, as in "genius--though".
var dashPattern = regexp.MustCompile(space + `*(—|--)` + space + `*`)

// Segment splits text into words and punctuation marks. Every fragment is
// trimmed and empty fragments are discarded. The result is a pure function
// of text; the vocabulary builder and the encoder both go through here.
func Segment(text string) []string {
	if text == "" {
		return []string{}
	}

	matches := splitPattern.FindAllStringIndex(text, -1)
	out := make([]string, 0, len(matches)+1)

	prev := 0
	for _, m := range matches {
		out = appendFragment(out, text[prev:m[0]])
		out = appendFragment(out, text[m[0]:m[1]])
		prev = m[1]
	}
	out = appendFragment(out, text[prev:])

	return out
}

func appendFragment(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}

// joinTokens rebuilds text from decoded token strings: tokens are joined by
// single spaces, then the space before each punctuation mark and on both
// sides of each dash is removed.
func joinTokens(tokens []string) string {
	text := joinPattern.ReplaceAllString(strings.Join(tokens, " "), "$1")
	return dashPattern.ReplaceAllString(text, "$1")
}
