package textfmt

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"
)

// Category classifies a rune for tokenization.
type Category int

const (
	// Whitespace is any rune for which unicode.IsSpace is true.
	Whitespace Category = iota
	// Word is any rune that is not whitespace (or punctuation, when the
	// classifier distinguishes it).
	Word
	// Punctuation is an ASCII punctuation rune.
	Punctuation
)

var categoryName = []string{
	"Whitespace",
	"Word",
	"Punctuation",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryName) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryName[c]
}

// Classifier assigns a Category to a rune. It must be defined for every
// rune and must not depend on anything but its argument.
type Classifier func(r rune) Category

// IsWhitespace separates whitespace from everything else.
func IsWhitespace(r rune) Category {
	if unicode.IsSpace(r) {
		return Whitespace
	}
	return Word
}

// IsPunctuation is IsWhitespace with ASCII punctuation split out of words.
func IsPunctuation(r rune) Category {
	if unicode.IsSpace(r) {
		return Whitespace
	}
	if r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
		return Punctuation
	}
	return Word
}

// Token is a maximal run of runes sharing one Category.
type Token struct {
	Text     string   // the runes of the run
	Category Category // category shared by every rune in Text
	Offset   int      // rune offset of the first rune in the source
	Position int      // index of the token in the token sequence
}

// Len returns the length of the token in runes.
func (t Token) Len() int {
	return utf8.RuneCountInString(t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("%s:%q", t.Category, t.Text)
}

// Scanner produces the tokens of a string one at a time.
// A Scanner is not restartable; create a new one to scan again.
type Scanner struct {
	classify Classifier
	input    string
	pos      int // byte offset of the next unread rune
	offset   int // rune offset of the next unread rune
	position int
}

// NewScanner returns a scanner over input using classify.
func NewScanner(input string, classify Classifier) *Scanner {
	return &Scanner{classify: classify, input: input}
}

// Next returns the next token. The second result is false once the input
// is exhausted.
func (s *Scanner) Next() (Token, bool) {
	if s.pos >= len(s.input) {
		return Token{}, false
	}

	start := s.pos
	first, size := utf8.DecodeRuneInString(s.input[start:])
	cat := s.classify(first)
	end := start + size
	runes := 1

	for end < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[end:])
		if s.classify(r) != cat {
			break
		}
		end += size
		runes++
	}

	tok := Token{
		Text:     s.input[start:end],
		Category: cat,
		Offset:   s.offset,
		Position: s.position,
	}
	s.pos = end
	s.offset += runes
	s.position++
	return tok, true
}

// Tokens returns the token sequence of input. Each range over the result
// scans input from the beginning.
func Tokens(input string, classify Classifier) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := NewScanner(input, classify)
		for tok, ok := s.Next(); ok; tok, ok = s.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize collects every token of input.
func Tokenize(input string, classify Classifier) []Token {
	var tokens []Token
	for tok := range Tokens(input, classify) {
		tokens = append(tokens, tok)
	}
	return tokens
}
