// ABOUTME: CLI command tests running against a temp-directory database
// ABOUTME: Covers display helpers and end-to-end command output
package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/recipedex/internal/models"
)

// runCommand executes the CLI with a temp database and captures stdout
func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "recipes.db"))
	t.Setenv("OPENAI_API_KEY", "")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v error = %v\noutput: %s", args, err, out.String())
	}
	return out.String()
}

func TestListCommand_SeedsAndLists(t *testing.T) {
	out := runCommand(t, "list")

	if !strings.Contains(out, "Masala Omelette") {
		t.Errorf("list output missing seeded recipe:\n%s", out)
	}
	if !strings.Contains(out, "NAME") {
		t.Errorf("list output missing table header:\n%s", out)
	}
}

func TestListCommand_CategoryFilter(t *testing.T) {
	out := runCommand(t, "list", "--category", "Dessert")

	if !strings.Contains(out, "Chocolate Mug Cake") {
		t.Errorf("filtered list missing dessert recipe:\n%s", out)
	}
	if strings.Contains(out, "Masala Omelette") {
		t.Errorf("filtered list leaked other categories:\n%s", out)
	}
}

func TestShowCommand(t *testing.T) {
	out := runCommand(t, "show", "1")

	if !strings.Contains(out, "Ingredients:") || !strings.Contains(out, "Steps:") {
		t.Errorf("show output incomplete:\n%s", out)
	}
}

func TestRecommendCommand(t *testing.T) {
	out := runCommand(t, "recommend")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus up to 5 recommendations
	if len(lines) < 2 || len(lines) > 6 {
		t.Errorf("recommend printed %d lines, want header plus at most 5 rows:\n%s", len(lines), out)
	}
}

func TestPantryCommand(t *testing.T) {
	out := runCommand(t, "pantry", "eggs", "bread", "butter", "salt", "pepper")

	if !strings.Contains(out, "NAME") {
		t.Errorf("pantry output missing table header:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-01")
	out := runCommand(t, "version")

	if !strings.Contains(out, "1.2.3") || !strings.Contains(out, "abc123") {
		t.Errorf("version output = %q, want version and commit", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q, want unchanged", got)
	}
	if got := truncate("a very long recipe name", 10); got != "a very ..." {
		t.Errorf("truncate() = %q, want %q", got, "a very ...")
	}
	// Tiny widths must still cut on rune boundaries
	if got := truncate("crème brûlée", 3); got != "crè" {
		t.Errorf("truncate(crème brûlée, 3) = %q, want %q", got, "crè")
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(nil); got != "-" {
		t.Errorf("formatMinutes(nil) = %q, want -", got)
	}
	if got := formatMinutes(models.IntPtr(25)); got != "25 min" {
		t.Errorf("formatMinutes(25) = %q, want 25 min", got)
	}
}

func TestJoinOrDash(t *testing.T) {
	if got := joinOrDash(nil); got != "-" {
		t.Errorf("joinOrDash(nil) = %q, want -", got)
	}
	if got := joinOrDash([]string{"a", "b"}); got != "a, b" {
		t.Errorf("joinOrDash() = %q, want %q", got, "a, b")
	}
}
