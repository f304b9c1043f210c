package textfmt

import (
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"
)

// Hyphen is appended to the text of a hyphenated segment on render.
const Hyphen = "-"

// minHyphenWidth is the narrowest column that reserves room for a hyphen.
const minHyphenWidth = 5

// ErrInvalidWidth is returned for a column narrower than one character.
var ErrInvalidWidth = errors.New("column width must be at least 1")

// Segment is one line of text laid out in a column.
type Segment struct {
	Text string
	// Hyphenated is true when the line ends in the middle of a word and a
	// hyphen should follow Text on render.
	Hyphenated bool
}

// Len returns the length of Text in runes, excluding any hyphen.
func (s Segment) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Render returns the segment as it is displayed.
func (s Segment) Render() string {
	if s.Hyphenated {
		return s.Text + Hyphen
	}
	return s.Text
}

// FormatToColumn breaks text into lines no longer than width runes.
//
// Lines break on whitespace where possible. A word that does not fit on
// the rest of the current line moves to the next line unless it is
// splittable: a word is splittable when it is longer than splitLimit, or
// when splitLimit is at least width. A word exactly width runes long is
// never split. A splittable word fills the current line and continues on
// the following ones; if width is greater than four, one column of every
// split line is left free for the hyphen.
//
// Whitespace is preserved. Runs that do not fit at the end of a line are
// carried to the start of the next one, so concatenating the Text of every
// segment reproduces text.
func FormatToColumn(text string, width, splitLimit int) ([]Segment, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}

	var lines []Segment
	for seg := range Lines(text, width, splitLimit) {
		lines = append(lines, seg)
	}
	return lines, nil
}

// Lines is the lazy form of FormatToColumn. It yields nothing when width
// is less than one.
func Lines(text string, width, splitLimit int) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if width < 1 {
			return
		}

		b := &breaker{width: width, splitLimit: splitLimit, yield: yield}
		for tok := range Tokens(text, IsWhitespace) {
			if tok.Category == Whitespace {
				b.space([]rune(tok.Text))
			} else {
				b.word([]rune(tok.Text))
			}
			if b.done {
				return
			}
		}
		if len(b.line) > 0 {
			b.flush(false)
		}
	}
}

type breaker struct {
	width      int
	splitLimit int
	line       []rune
	yield      func(Segment) bool
	done       bool // the consumer stopped iterating
}

func (b *breaker) flush(hyphenated bool) {
	if b.done {
		return
	}
	seg := Segment{Text: string(b.line), Hyphenated: hyphenated}
	b.line = b.line[:0]
	if !b.yield(seg) {
		b.done = true
	}
}

// hyphenSpace is the number of columns a split line keeps for the hyphen.
func (b *breaker) hyphenSpace() int {
	if b.width >= minHyphenWidth {
		return 1
	}
	return 0
}

func (b *breaker) splittable(n int) bool {
	if n == b.width {
		return false
	}
	return b.splitLimit >= b.width || n > b.splitLimit
}

func (b *breaker) space(run []rune) {
	for len(run) > 0 && !b.done {
		room := b.width - len(b.line)
		if room == 0 {
			b.flush(false)
			continue
		}
		n := min(room, len(run))
		b.line = append(b.line, run[:n]...)
		run = run[n:]
	}
}

func (b *breaker) word(w []rune) {
	if len(b.line)+len(w) <= b.width {
		b.line = append(b.line, w...)
		return
	}

	if !b.splittable(len(w)) {
		if len(b.line) > 0 {
			b.flush(false)
		}
		b.line = append(b.line, w...)
		return
	}

	hyphen := b.hyphenSpace()
	if avail := b.width - hyphen - len(b.line); avail > 0 {
		// w is longer than avail here, so the split falls inside the word.
		b.line = append(b.line, w[:avail]...)
		w = w[avail:]
		b.flush(hyphen > 0)
	} else if len(b.line) > 0 {
		b.flush(false)
	}

	chunk := b.width - hyphen
	for len(w) > b.width && !b.done {
		b.line = append(b.line, w[:chunk]...)
		w = w[chunk:]
		b.flush(hyphen > 0)
	}
	b.line = append(b.line, w...)
}
