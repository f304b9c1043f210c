// Package textfmt lays out arbitrary text inside a fixed-width column.
//
// # Tokenizer
//
// A Scanner splits text into maximal runs of runes that share a Category.
// The category of each rune comes from a Classifier supplied by the caller:
//
//	s := textfmt.NewScanner("Hello, World!", textfmt.IsPunctuation)
//	for tok, ok := s.Next(); ok; tok, ok = s.Next() {
//	    fmt.Println(tok.Category, tok.Text)
//	}
//
// Concatenating the text of every token reproduces the input exactly.
//
// # Line Breaking
//
// FormatToColumn fills lines greedily, breaking on whitespace where it can.
// A word that does not fit on the remaining space of a line is either moved
// to the next line or split across lines, depending on the split limit:
//
//	lines, err := textfmt.FormatToColumn("argleybargley", 10, 5)
//	// [{argleybar true} {gley false}]
//
// When the column is wider than four characters, a split reserves one
// column so the caller can append a hyphen (see Segment.Render).
//
// Every rune counts as one column. Wide characters, grapheme clusters and
// ANSI escape sequences are not measured specially.
package textfmt
