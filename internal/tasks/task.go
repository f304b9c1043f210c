package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task.
type Status string

const (
	Open   Status = "Open"
	Closed Status = "Closed"
)

// Task is one tracked unit of work, stored as <id>.yaml in the task directory.
type Task struct {
	ID        int       `yaml:"id" json:"id" jsonschema:"required,minimum=0"`
	Name      string    `yaml:"name" json:"name" jsonschema:"required"`
	Status    Status    `yaml:"status" json:"status" jsonschema:"enum=Open,enum=Closed,default=Open"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	Priority  int       `yaml:"priority" json:"priority" jsonschema:"minimum=0,default=0"`
	Notes     []Note    `yaml:"notes" json:"notes"`
}

// Note is a timestamped comment attached to a task
type Note struct {
	ID        string    `yaml:"id,omitempty" json:"id,omitempty" jsonschema:"format=uuid"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at" jsonschema:"required"`
	Text      string    `yaml:"note" json:"note" jsonschema:"required"`
}

// NewTask creates an open task created now.
func NewTask(id int, name string, priority int) Task {
	return Task{
		ID:        id,
		Name:      name,
		Status:    Open,
		CreatedAt: now(),
		Priority:  priority,
		Notes:     []Note{},
	}
}

// NewNote creates a note with a fresh ID.
func NewNote(text string) Note {
	return Note{
		ID:        uuid.New().String(),
		CreatedAt: now(),
		Text:      text,
	}
}

// IsOpen reports whether the task has not been closed.
func (t *Task) IsOpen() bool {
	return t.Status != Closed
}

// AddNote appends a new note to the task and returns it.
func (t *Task) AddNote(text string) Note {
	n := NewNote(text)
	t.Notes = append(t.Notes, n)
	return n
}

// fillDefaults applies the values a task file may omit.
func (t *Task) fillDefaults() {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now()
	}
	if t.Status == "" {
		t.Status = Open
	}
	if t.Notes == nil {
		t.Notes = []Note{}
	}
}

func (t Task) clone() Task {
	t.Notes = append([]Note{}, t.Notes...)
	return t
}

var now = func() time.Time {
	return time.Now().UTC()
}
