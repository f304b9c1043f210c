package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/erichgess/tisk/internal/project"
	"github.com/erichgess/tisk/internal/tasks"
	"github.com/erichgess/tisk/internal/testutil"
)

// testConfig keeps rendered tables independent of the clock and terminal.
const testConfig = `version: "1"
display:
  width: 40
  date_format: "----"
`

// execute runs the root command with args and returns its standard output.
// Cannot use t.Parallel() in callers - the command tree is shared.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// mustExecute is execute for commands expected to succeed.
func mustExecute(t *testing.T, args ...string) string {
	t.Helper()

	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("tisk %s failed: %v", strings.Join(args, " "), err)
	}
	return out
}

// resetFlags restores every flag of cmd and its subcommands to its default
// so that one test's flags do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func setupProject(t *testing.T) *testutil.TestEnv {
	t.Helper()

	env := testutil.SetupTestEnv(t)
	env.InitProject(testConfig)
	return env
}

func TestInit(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	out := mustExecute(t, "--dir", env.ProjectDir, "init")
	if out != "Initialized directory\n" {
		t.Errorf("Unexpected output: %q", out)
	}
	if !env.FileExists(".tisk/config.yaml") {
		t.Error("Expected .tisk/config.yaml to exist")
	}

	out = mustExecute(t, "--dir", env.ProjectDir, "init")
	if out != "Already initialized\n" {
		t.Errorf("Unexpected output on second init: %q", out)
	}
}

func TestAddAndList(t *testing.T) {
	env := setupProject(t)
	dir := env.ProjectDir

	if out := mustExecute(t, "-C", dir, "add", "write the documentation", "-p", "3", "-n", "first note"); out != "Added task 1\n" {
		t.Errorf("Unexpected add output: %q", out)
	}
	mustExecute(t, "-C", dir, "add", "tidy up")

	if !env.FileExists(".tisk/1.yaml") || !env.FileExists(".tisk/2.yaml") {
		t.Fatal("Expected one file per task")
	}

	expected := "ID   Date Name                   Pri Nts\n" +
		"1    ---- write the documentati- 3   1  \n" +
		"          on                            \n" +
		"2    ---- tidy up                1   0  \n"

	if out := mustExecute(t, "-C", dir, "list"); out != expected {
		t.Errorf("Unexpected list output:\n%q\nwant:\n%q", out, expected)
	}

	// Listing is the default action
	if out := mustExecute(t, "-C", dir); out != expected {
		t.Errorf("Unexpected default output:\n%q", out)
	}
}

func TestListWidthFlag(t *testing.T) {
	env := setupProject(t)
	mustExecute(t, "-C", env.ProjectDir, "add", "tidy up")

	out := mustExecute(t, "-C", env.ProjectDir, "--width", "30", "list")
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) != 30 {
			t.Errorf("Expected 30-character lines, got %d: %q", len(line), line)
		}
	}

	if _, err := execute(t, "-C", env.ProjectDir, "--width", "10", "list"); err == nil {
		t.Error("Expected an error for a table narrower than its fixed columns")
	}
}

func TestCloseTask(t *testing.T) {
	env := setupProject(t)
	dir := env.ProjectDir
	mustExecute(t, "-C", dir, "add", "tidy up")

	if out := mustExecute(t, "-C", dir, "close", "1", "-n", "done"); out != "Task 1 was closed\n" {
		t.Errorf("Unexpected close output: %q", out)
	}

	header := "ID   Date Name                   Pri Nts\n"
	closedRow := "1    ---- tidy up                1   1  \n"

	if out := mustExecute(t, "-C", dir, "list"); out != header {
		t.Errorf("Expected no open tasks, got:\n%q", out)
	}
	if out := mustExecute(t, "-C", dir, "list", "--closed"); out != header+closedRow {
		t.Errorf("Unexpected closed list:\n%q", out)
	}
	if out := mustExecute(t, "-C", dir, "list", "--all"); out != header+closedRow {
		t.Errorf("Unexpected full list:\n%q", out)
	}

	content := env.ReadFile(".tisk/1.yaml")
	if !strings.Contains(content, "status: Closed") || !strings.Contains(content, "note: done") {
		t.Errorf("Unexpected task file:\n%s", content)
	}
}

func TestCloseMissingTask(t *testing.T) {
	env := setupProject(t)

	_, err := execute(t, "-C", env.ProjectDir, "close", "7")
	if !errors.Is(err, tasks.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if _, err := execute(t, "-C", env.ProjectDir, "close", "seven"); err == nil {
		t.Error("Expected an error for a non-integer ID")
	}
}

func TestListFiltersAreExclusive(t *testing.T) {
	env := setupProject(t)

	if _, err := execute(t, "-C", env.ProjectDir, "list", "--all", "--closed"); err == nil {
		t.Error("Expected --all and --closed to be rejected together")
	}
}

func TestEditPriority(t *testing.T) {
	env := setupProject(t)
	mustExecute(t, "-C", env.ProjectDir, "add", "tidy up")

	out := mustExecute(t, "-C", env.ProjectDir, "edit", "1", "-p", "5")
	if out != "Task 1 priority set from 1 to 5\n" {
		t.Errorf("Unexpected edit output: %q", out)
	}
	if !strings.Contains(env.ReadFile(".tisk/1.yaml"), "priority: 5") {
		t.Error("Expected new priority to be written")
	}

	// Without -p there is nothing to change
	if out := mustExecute(t, "-C", env.ProjectDir, "edit", "1"); out != "" {
		t.Errorf("Expected no output, got %q", out)
	}

	if _, err := execute(t, "-C", env.ProjectDir, "edit", "1", "-p", "-2"); err == nil {
		t.Error("Expected an error for a negative priority")
	}
}

func TestNoteWithoutTarget(t *testing.T) {
	env := setupProject(t)
	mustExecute(t, "-C", env.ProjectDir, "add", "tidy up")

	_, err := execute(t, "-C", env.ProjectDir, "note", "hello")
	if !errors.Is(err, errNoTask) {
		t.Errorf("Expected errNoTask, got %v", err)
	}
}

func TestCheckoutAndNotes(t *testing.T) {
	env := setupProject(t)
	dir := env.ProjectDir
	mustExecute(t, "-C", dir, "add", "tidy up", "-n", "first note")

	if out := mustExecute(t, "-C", dir, "checkout", "1"); out != "Checkout task 1\n" {
		t.Errorf("Unexpected checkout output: %q", out)
	}
	if got := strings.TrimSpace(env.ReadFile(".tisk/.checkout")); got != "1" {
		t.Errorf("Expected checkout marker 1, got %q", got)
	}

	mustExecute(t, "-C", dir, "note", "hello")

	expected := "ID   Note                               \n" +
		"1    first note                         \n" +
		"2    hello                              \n"
	if out := mustExecute(t, "-C", dir, "note", "--list"); out != expected {
		t.Errorf("Unexpected notes:\n%q", out)
	}
	// No note text lists too
	if out := mustExecute(t, "-C", dir, "note"); out != expected {
		t.Errorf("Unexpected notes:\n%q", out)
	}

	mustExecute(t, "-C", dir, "checkin")
	if env.FileExists(".tisk/.checkout") {
		t.Error("Expected checkin to remove the marker")
	}
	if _, err := execute(t, "-C", dir, "note", "again"); !errors.Is(err, errNoTask) {
		t.Errorf("Expected errNoTask after checkin, got %v", err)
	}

	// --id works without a checkout
	mustExecute(t, "-C", dir, "note", "--id", "1", "third")
	if out := mustExecute(t, "-C", dir, "note", "--id", "1", "-l"); !strings.Contains(out, "3    third") {
		t.Errorf("Expected third note, got:\n%q", out)
	}
}

func TestCheckoutMissingTask(t *testing.T) {
	env := setupProject(t)

	_, err := execute(t, "-C", env.ProjectDir, "checkout", "3")
	if !errors.Is(err, tasks.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if env.FileExists(".tisk/.checkout") {
		t.Error("Expected no checkout marker")
	}
}

func TestCommandsOutsideProject(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	for _, args := range [][]string{
		{"add", "tidy up"},
		{"list"},
		{"checkin"},
	} {
		_, err := execute(t, append([]string{"-C", env.ProjectDir}, args...)...)
		if !errors.Is(err, project.ErrNoProject) {
			t.Errorf("tisk %s: expected ErrNoProject, got %v", args[0], err)
		}
	}
}

func TestProjectFoundFromSubdirectory(t *testing.T) {
	env := setupProject(t)
	sub := filepath.Join(env.ProjectDir, "a", "b")
	env.CreateFile(filepath.Join(sub, "keep"), "")

	mustExecute(t, "-C", sub, "add", "tidy up")
	if !env.FileExists(".tisk/1.yaml") {
		t.Error("Expected task to be written to the enclosing project")
	}
}

func TestSQLiteBackend(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	env.InitProject(testConfig + "storage:\n  backend: sqlite\n")
	dir := env.ProjectDir

	mustExecute(t, "-C", dir, "add", "tidy up", "-p", "2")
	mustExecute(t, "-C", dir, "close", "1")

	if !env.FileExists(".tisk/tasks.db") {
		t.Fatal("Expected tasks.db to exist")
	}
	if env.FileExists(".tisk/1.yaml") {
		t.Error("Expected no task files with the sqlite backend")
	}

	out := mustExecute(t, "-C", dir, "list", "--closed")
	if !strings.Contains(out, "tidy up") {
		t.Errorf("Expected closed task in output, got:\n%q", out)
	}
}

func TestListWatch(t *testing.T) {
	env := setupProject(t)
	mustExecute(t, "-C", env.ProjectDir, "add", "tidy up")

	original := watchTasks
	defer func() { watchTasks = original }()

	var watched string
	watchTasks = func(ctx context.Context, dir string, onChange func()) error {
		watched = dir
		onChange()
		return nil
	}

	out := mustExecute(t, "-C", env.ProjectDir, "list", "--watch")
	if watched != env.TaskDir {
		// The project is found through its resolved path
		if resolved, err := filepath.EvalSymlinks(env.TaskDir); err != nil || watched != resolved {
			t.Errorf("Expected watch on %s, got %s", env.TaskDir, watched)
		}
	}
	if n := strings.Count(out, "tidy up"); n != 2 {
		t.Errorf("Expected the table to be rendered twice, got %d:\n%s", n, out)
	}
}

func TestConfigShow(t *testing.T) {
	env := setupProject(t)

	out := mustExecute(t, "-C", env.ProjectDir, "config", "show")
	for _, want := range []string{"backend: file", "width: 40", "split_limit: 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in config output:\n%s", want, out)
		}
	}
}

func TestConfigEnvOverride(t *testing.T) {
	env := setupProject(t)
	t.Setenv("TISK_DISPLAY_WIDTH", "60")

	out := mustExecute(t, "-C", env.ProjectDir, "config", "show")
	if !strings.Contains(out, "width: 60") {
		t.Errorf("Expected environment override, got:\n%s", out)
	}
}

func TestConfigPath(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	out := mustExecute(t, "-C", env.ProjectDir, "config", "path")
	if !strings.Contains(out, filepath.Join(env.Home, ".tisk", "config.yaml")) {
		t.Errorf("Expected global path, got:\n%s", out)
	}
	if !strings.Contains(out, "not in a tisk project") {
		t.Errorf("Expected missing project note, got:\n%s", out)
	}
}

func TestSchema(t *testing.T) {
	out := mustExecute(t, "schema")

	var schema struct {
		Type       string                     `json:"type"`
		Properties map[string]json.RawMessage `json:"properties"`
		Required   []string                   `json:"required"`
	}
	if err := json.Unmarshal([]byte(out), &schema); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}
	if schema.Type != "object" {
		t.Errorf("Expected object schema, got %q", schema.Type)
	}
	for _, key := range []string{"id", "name", "status", "created_at", "priority", "notes"} {
		if _, ok := schema.Properties[key]; !ok {
			t.Errorf("Expected property %q", key)
		}
	}
	if strings.Join(schema.Required, ",") != "id,name" {
		t.Errorf("Expected id and name to be required, got %v", schema.Required)
	}
}
