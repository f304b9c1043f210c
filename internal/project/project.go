// Package project locates and creates tisk projects.
//
// A project is any directory containing a .tisk directory. Commands run
// anywhere below it find it by searching the working directory and its
// ancestors.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erichgess/tisk/internal/config"
)

// ErrNoProject indicates no .tisk directory exists in the start directory
// or any of its parents.
var ErrNoProject = errors.New("invalid tisk project, could not find .tisk dir in the current directory or any parent directory")

// InitResult reports what Initialize did.
type InitResult int

const (
	Initialized InitResult = iota
	AlreadyInitialized
)

func (r InitResult) String() string {
	if r == AlreadyInitialized {
		return "Already initialized"
	}
	return "Initialized directory"
}

// FindUp searches start and each of its ancestors for a directory named
// name and returns its path. found is false if there is none.
func FindUp(start, name string) (path string, found bool, err error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve %s: %w", start, err)
	}
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	for {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.IsDir():
			return candidate, true, nil
		case err != nil && !os.IsNotExist(err):
			return "", false, fmt.Errorf("failure while searching for %s dir: %w", name, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Find returns the .tisk directory governing start.
func Find(start string) (string, error) {
	dir, found, err := FindUp(start, config.DirName)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrNoProject
	}
	return dir, nil
}

// Initialize creates a .tisk directory with a default configuration in dir.
// An existing .tisk directory is left untouched.
func Initialize(dir string) (InitResult, error) {
	taskDir := filepath.Join(dir, config.DirName)

	if info, err := os.Stat(taskDir); err == nil {
		if !info.IsDir() {
			return 0, fmt.Errorf("%s exists and is not a directory", taskDir)
		}
		return AlreadyInitialized, nil
	}

	if err := os.Mkdir(taskDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", taskDir, err)
	}

	// Create project config
	if err := config.WriteProjectDefault(config.ProjectConfigPath(taskDir)); err != nil {
		return 0, fmt.Errorf("failed to write config: %w", err)
	}
	return Initialized, nil
}
