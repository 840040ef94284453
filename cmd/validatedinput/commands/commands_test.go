package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-validatedinput/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheck_ReportsEachValue(t *testing.T) {
	out, err := execute(t, "check", "alice", "bo", "--min-length", "3", "--message", "too short")

	if cli.ExitCode(err) != cli.ExitUser {
		t.Fatalf("exit code = %d, want %d (err=%v)", cli.ExitCode(err), cli.ExitUser, err)
	}
	if !errors.Is(err, ErrInvalidValues) {
		t.Fatalf("error = %v, want ErrInvalidValues", err)
	}
	want := "ok  \"alice\"\nbad \"bo\": too short\n"
	if out != want {
		t.Fatalf("output mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestCheck_AllValid(t *testing.T) {
	out, err := execute(t, "check", "abc", "abc", "--pattern", "^[a-z]+$")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if strings.Count(out, "ok  ") != 2 {
		t.Fatalf("expected both values reported valid, got %q", out)
	}
}

func TestCheck_RequiresArgs(t *testing.T) {
	if _, err := execute(t, "check"); err == nil {
		t.Fatalf("expected error without values")
	}
}

func TestRender_Fragment(t *testing.T) {
	out, err := execute(t, "render", "ab", "--fragment", "--min-length", "3", "--message", "too short", "--label", "Name")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, part := range []string{
		`<div class="validated-input">`,
		`<label class="label">Name</label>`,
		`value="ab"`,
		`<span class="error">too short</span>`,
	} {
		if !strings.Contains(out, part) {
			t.Fatalf("expected %q in output\n got: %s", part, out)
		}
	}
}

func TestRender_PageWithoutValueHasNoAnnotation(t *testing.T) {
	out, err := execute(t, "render", "--min-length", "3")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<!DOCTYPE html>") || !strings.Contains(out, ".validated-input .error {") {
		t.Fatalf("expected a full page with stylesheet, got %s", out)
	}
	if strings.Contains(out, `<span class="error">`) {
		t.Fatalf("first render must not show an annotation, got %s", out)
	}
}

func TestRender_ContainerClassScopesStylesheet(t *testing.T) {
	out, err := execute(t, "render", "ab", "--min-length", "3", "--container-class", "field")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, part := range []string{`<div class="field">`, ".field .error {"} {
		if !strings.Contains(out, part) {
			t.Fatalf("expected %q in output\n got: %s", part, out)
		}
	}
}

func TestRender_MissingTemplatesDirIsUserError(t *testing.T) {
	_, err := execute(t, "render", "--fragment", "--templates-dir", filepath.Join(t.TempDir(), "missing"))
	if cli.ExitCode(err) != cli.ExitUser {
		t.Fatalf("exit code = %d, want %d (err=%v)", cli.ExitCode(err), cli.ExitUser, err)
	}
}

func TestRender_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.html")
	if _, err := execute(t, "render", "hello", "--output", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `value="hello"`) {
		t.Fatalf("unexpected output %s", data)
	}
}

func TestRoot_InvalidConfigIsUserError(t *testing.T) {
	_, err := execute(t, "check", "x", "--min-length", "5", "--max-length", "2")
	if cli.ExitCode(err) != cli.ExitUser {
		t.Fatalf("exit code = %d, want %d (err=%v)", cli.ExitCode(err), cli.ExitUser, err)
	}
}
