package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps one YAML file per task, named <id>.yaml.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store over the task directory dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// TaskPath returns the file holding the task with the given ID.
func (s *FileStore) TaskPath(id int) string {
	return filepath.Join(s.dir, strconv.Itoa(id)+".yaml")
}

// Load reads every *.yaml file in the task directory.
// Returns an empty list if the directory doesn't exist.
func (s *FileStore) Load(ctx context.Context) (*List, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewList(), nil
		}
		return nil, fmt.Errorf("failed to read task directory: %w", err)
	}

	var loaded []Task
	for _, entry := range entries {
		if entry.IsDir() || !isTaskFile(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		task, err := readTask(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, task)
	}

	slog.Debug("loaded tasks", "dir", s.dir, "count", len(loaded))
	return NewList(loaded...), nil
}

func readTask(path string) (Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Task{}, fmt.Errorf("failed to read task: %w", err)
	}

	var task Task
	if err := yaml.Unmarshal(data, &task); err != nil {
		return Task{}, fmt.Errorf("failed to parse task %s: %w", filepath.Base(path), err)
	}
	task.fillDefaults()
	return task, nil
}

// Save writes every task to its own file.
func (s *FileStore) Save(ctx context.Context, l *List) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create task directory: %w", err)
	}

	slog.Debug("writing tasks", "dir", s.dir, "count", l.Len())
	written := 0
	for _, task := range l.tasks {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := s.writeTask(task); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (s *FileStore) writeTask(task Task) error {
	data, err := yaml.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task %d: %w", task.ID, err)
	}

	// Write atomically via temp file
	path := s.TaskPath(task.ID)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write task %d: %w", task.ID, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename task %d: %w", task.ID, err)
	}
	return nil
}

// Close is a no-op; FileStore holds no open resources.
func (s *FileStore) Close() error {
	return nil
}

// isTaskFile reports whether name is <id>.yaml. Other files in the task
// directory (config.yaml, .checkout, temporary files) are not tasks.
func isTaskFile(name string) bool {
	stem, ok := strings.CutSuffix(name, ".yaml")
	if !ok {
		return false
	}
	_, err := strconv.Atoi(stem)
	return err == nil
}
