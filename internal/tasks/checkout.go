package tasks

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CheckoutFile is the name of the marker holding the checked out task ID.
const CheckoutFile = ".checkout"

// CheckoutPath returns the marker path inside the task directory dir.
func CheckoutPath(dir string) string {
	return filepath.Join(dir, CheckoutFile)
}

// ReadCheckout returns the checked out task ID. ok is false when no task is
// checked out.
func ReadCheckout(dir string) (id int, ok bool, err error) {
	data, err := os.ReadFile(CheckoutPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read checkout: %w", err)
	}

	id, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || id < 0 {
		return 0, false, fmt.Errorf("invalid checkout marker %s: %q", CheckoutPath(dir), string(data))
	}
	return id, true, nil
}

// WriteCheckout marks id as the checked out task, replacing any previous
// checkout. The marker has a single writer and the last write wins.
func WriteCheckout(dir string, id int) error {
	slog.Debug("checkout task", "id", id)
	if err := os.WriteFile(CheckoutPath(dir), []byte(strconv.Itoa(id)), 0644); err != nil {
		return fmt.Errorf("failed to write checkout: %w", err)
	}
	return nil
}

// Checkin releases the checked out task. It is not an error if no task is
// checked out.
func Checkin(dir string) error {
	if err := os.Remove(CheckoutPath(dir)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove checkout: %w", err)
	}
	return nil
}
