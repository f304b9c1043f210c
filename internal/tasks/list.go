package tasks

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNotFound indicates no task has the requested ID.
	ErrNotFound = errors.New("could not find task with ID")

	// ErrInvalidFilter indicates an unknown status filter.
	ErrInvalidFilter = errors.New("invalid status filter")
)

// Filter names accepted by Select.
const (
	FilterOpen   = "open"
	FilterClosed = "closed"
	FilterAll    = "all"
)

// List holds every task of a project in memory. Commands modify the list
// and a Store persists it afterwards. A List is not safe for concurrent use.
type List struct {
	tasks []Task
}

// NewList creates a list holding tasks, ordered by ID.
func NewList(tasks ...Task) *List {
	l := &List{tasks: make([]Task, 0, len(tasks))}
	for _, t := range tasks {
		t.fillDefaults()
		l.tasks = append(l.tasks, t)
	}
	slices.SortFunc(l.tasks, func(a, b Task) int { return cmp.Compare(a.ID, b.ID) })
	return l
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// NextID returns one more than the highest ID in the list, or 1 when the
// list is empty.
func (l *List) NextID() int {
	next := 1
	for _, t := range l.tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// Add appends a new open task and returns its ID.
func (l *List) Add(name string, priority int) int {
	id := l.NextID()
	l.tasks = append(l.tasks, NewTask(id, name, priority))
	return id
}

// Get returns the task with the given ID, or nil. The result points into the
// list and stays valid until the next Add.
func (l *List) Get(id int) *Task {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return &l.tasks[i]
		}
	}
	return nil
}

// Close marks a task closed and returns it.
func (l *List) Close(id int) (*Task, error) {
	t := l.Get(id)
	if t == nil {
		return nil, notFound(id)
	}
	t.Status = Closed
	return t, nil
}

// SetPriority changes the priority of a task and returns the previous value.
func (l *List) SetPriority(id, priority int) (int, error) {
	t := l.Get(id)
	if t == nil {
		return 0, notFound(id)
	}
	old := t.Priority
	t.Priority = priority
	return old, nil
}

// AddNote attaches a note to a task.
func (l *List) AddNote(id int, text string) (Note, error) {
	t := l.Get(id)
	if t == nil {
		return Note{}, notFound(id)
	}
	return t.AddNote(text), nil
}

// All returns a copy of every task, ordered by ID.
func (l *List) All() []Task {
	return l.Filter(func(Task) bool { return true })
}

// Open returns the tasks that are not closed.
func (l *List) Open() []Task {
	return l.Filter(func(t Task) bool { return t.IsOpen() })
}

// Closed returns the closed tasks.
func (l *List) Closed() []Task {
	return l.Filter(func(t Task) bool { return !t.IsOpen() })
}

// Filter returns a copy of the tasks for which keep returns true.
func (l *List) Filter(keep func(Task) bool) []Task {
	result := []Task{}
	for _, t := range l.tasks {
		if keep(t) {
			result = append(result, t.clone())
		}
	}
	return result
}

// Select returns the tasks matching filter ("open", "closed" or "all"),
// in display order. An empty filter selects open tasks.
func (l *List) Select(filter string) ([]Task, error) {
	var result []Task
	switch strings.ToLower(filter) {
	case "", FilterOpen:
		result = l.Open()
	case FilterClosed:
		result = l.Closed()
	case FilterAll:
		result = l.All()
	default:
		return nil, fmt.Errorf("%w: %q (expected open, closed or all)", ErrInvalidFilter, filter)
	}
	Sort(result)
	return result, nil
}

// Sort orders tasks for display: highest priority first, then oldest first.
func Sort(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func notFound(id int) error {
	return fmt.Errorf("%w %d", ErrNotFound, id)
}
