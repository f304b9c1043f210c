// Package table renders rows of text into fixed-width columns.
//
// Columns are either sized explicitly or share the space left over after
// the sized columns (and one separator space after each) are taken out of
// the total width:
//
//	t, err := table.New(80, []table.Column{
//	    {Label: "ID", Width: 4},
//	    {Label: "Name"},
//	})
//	if err != nil {
//	    return err // *table.ConfigError
//	}
//	fmt.Print(t.Header())
//	row, _ := t.Row(table.NewRow(1, "write the docs"))
//	fmt.Print(row)
//
// Each cell is wrapped to its column with textfmt.FormatToColumn. A row
// takes as many physical lines as its tallest cell; shorter cells are
// padded with blanks.
package table
