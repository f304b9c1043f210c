// Package view renders task lists and notes as text tables.
package view

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/erichgess/tisk/internal/table"
	"github.com/erichgess/tisk/internal/tasks"
)

// Fixed column widths of the task table.
const (
	idWidth       = 4
	priorityWidth = 3
	notesWidth    = 3
)

// Options controls how tables are laid out.
type Options struct {
	Width       int    // total table width
	SplitLimit  int    // words longer than this may be hyphenated; 0 means table.DefaultSplitLimit
	DateFormat  string // time layout of the Date column
	HeaderStyle func(string) string
}

func (o Options) newTable(columns []table.Column) (*table.Table, error) {
	t, err := table.New(o.Width, columns)
	if err != nil {
		return nil, err
	}
	if o.SplitLimit > 0 {
		t = t.WithSplitLimit(o.SplitLimit)
	}
	return t, nil
}

func (o Options) dateFormat() string {
	if o.DateFormat == "" {
		return time.DateOnly
	}
	return o.DateFormat
}

func writeHeader(w io.Writer, t *table.Table, o Options) error {
	_, err := io.WriteString(w, t.HeaderFunc(o.HeaderStyle))
	return err
}

// Tasks writes list as a table with ID, Date, Name, Pri and Nts columns.
// The Name column takes the space the others leave.
func Tasks(w io.Writer, list []tasks.Task, o Options) error {
	layout := o.dateFormat()
	dateWidth := max(utf8.RuneCountInString(time.Time{}.Format(layout)), len("Date"))

	t, err := o.newTable([]table.Column{
		{Label: "ID", Width: idWidth},
		{Label: "Date", Width: dateWidth},
		{Label: "Name"},
		{Label: "Pri", Width: priorityWidth},
		{Label: "Nts", Width: notesWidth},
	})
	if err != nil {
		return err
	}

	if err := writeHeader(w, t, o); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, task := range list {
		row := table.NewRow(task.ID, task.CreatedAt.Format(layout), task.Name, task.Priority, len(task.Notes))
		s, err := t.Row(row)
		if err != nil {
			return fmt.Errorf("failed to render task %d: %w", task.ID, err)
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// Notes writes notes as a table numbered from 1.
func Notes(w io.Writer, notes []tasks.Note, o Options) error {
	t, err := o.newTable([]table.Column{
		{Label: "ID", Width: idWidth},
		{Label: "Note"},
	})
	if err != nil {
		return err
	}

	if err := writeHeader(w, t, o); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, note := range notes {
		s, err := t.Row(table.NewRow(i+1, note.Text))
		if err != nil {
			return fmt.Errorf("failed to render note %d: %w", i+1, err)
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
