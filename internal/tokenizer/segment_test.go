package tokenizer

import "testing"

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", " \t\n  ", []string{}},
		{"single word", "hello", []string{"hello"}},
		{"comma and period", "Hello, world.", []string{"Hello", ",", "world", "."}},
		{"question and exclamation", "Why? Now!", []string{"Why", "?", "Now", "!"}},
		{"quotes", `He said "hi"`, []string{"He", "said", `"`, "hi", `"`}},
		{"apostrophe", "it's", []string{"it", "'", "s"}},
		{"semicolon and colon", "a; b: c", []string{"a", ";", "b", ":", "c"}},
		{"parentheses", "(aside)", []string{"(", "aside", ")"}},
		{"ascii double dash", "wait--what", []string{"wait", "--", "what"}},
		{"em dash", "wait—what", []string{"wait", "—", "what"}},
		{"runs of whitespace", "a   b\n\nc", []string{"a", "b", "c"}},
		{"pure punctuation", ",.!", []string{",", ".", "!"}},
		{"hyphen stays in word", "well-known", []string{"well-known"}},
		{"vertical tab", "hello\vworld", []string{"hello", "world"}},
		{"no-break space", "hello\u00a0world", []string{"hello", "world"}},
		{"em space", "a\u2003b", []string{"a", "b"}},
		{"ideographic space", "a\u3000b", []string{"a", "b"}},
		{"next line", "a\u0085b", []string{"a", "b"}},
		{"file separator", "a\x1cb", []string{"a", "b"}},
		{"no-break space before comma", "Hello\u00a0, world", []string{"Hello", ",", "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.input)
			if !equalStrings(got, tt.want) {
				t.Errorf("Segment(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSegment_Deterministic(t *testing.T) {
	const text = `I HAD always thought Jack Gisburn rather a cheap genius--though a good fellow enough.`

	first := Segment(text)
	second := Segment(text)

	if !equalStrings(first, second) {
		t.Errorf("Segment not deterministic: %q vs %q", first, second)
	}
}

func TestSegment_NoEmptyFragments(t *testing.T) {
	for _, frag := range Segment("  Hello ,  world .\t\r\n(  ) ") {
		if frag == "" {
			t.Fatal("Segment returned an empty fragment")
		}
	}
}

func TestJoinTokens(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{[]string{"Hello", ",", "world", "."}, "Hello, world."},
		{[]string{"Why", "?"}, "Why?"},
		{[]string{"a", "b"}, "a b"},
		{[]string{}, ""},
		{[]string{"wait", "--", "what"}, "wait--what"},
		{[]string{"wait", "—", "what"}, "wait—what"},
		{[]string{"genius", "--", "though", ","}, "genius--though,"},
		{[]string{"—", "a"}, "—a"},
	}

	for _, tt := range tests {
		got := joinTokens(tt.tokens)
		if got != tt.want {
			t.Errorf("joinTokens(%q) = %q; want %q", tt.tokens, got, tt.want)
		}
	}
}
