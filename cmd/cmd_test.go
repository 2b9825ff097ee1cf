package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default so tests sharing the
// package-level command tree do not leak values into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"RUSTQUIZ_MODE", "RUSTQUIZ_COUNT", "RUSTQUIZ_LEVELS", "RUSTQUIZ_TAGS",
		"RUSTQUIZ_BANK", "RUSTQUIZ_SEED", "RUSTQUIZ_LOG", "RUSTQUIZ_LOG_LEVEL"} {
		t.Setenv(env, "")
	}
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "rustquiz ") {
		t.Errorf("output = %q", out)
	}
}

func TestList_All(t *testing.T) {
	out, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "20 of 20 questions") {
		t.Errorf("missing count line:\n%s", out)
	}
}

func TestList_FilterByLevel(t *testing.T) {
	out, err := execute(t, "", "list", "--level", "intro")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "2 of 20 questions") {
		t.Errorf("expected 2 intro questions:\n%s", out)
	}
	if strings.Contains(out, "Intermediate") {
		t.Errorf("filter let other levels through:\n%s", out)
	}
}

func TestList_BadLevel(t *testing.T) {
	if _, err := execute(t, "", "list", "--level", "guru"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ownership", "Ownership"},
		{strings.Repeat("a", 40), strings.Repeat("a", 40)},
		{strings.Repeat("a", 41), strings.Repeat("a", 37) + "..."},
		{strings.Repeat("é", 36) + "ü→λ§", strings.Repeat("é", 36) + "ü→λ§"},
		{strings.Repeat("é", 36) + "ü→λ§ñ", strings.Repeat("é", 36) + "ü..."},
	}
	for _, tt := range tests {
		got := truncateTitle(tt.in, 40)
		if got != tt.want {
			t.Errorf("truncateTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncateTitle(%q) returned invalid UTF-8", tt.in)
		}
	}
}

func TestShow(t *testing.T) {
	out, err := execute(t, "", "show", "12")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "── #12 ") || !strings.Contains(out, "✓") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestShow_Missing(t *testing.T) {
	_, err := execute(t, "", "show", "999")
	if err == nil || !strings.Contains(err.Error(), "no question with id 999") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidate_BuiltIn(t *testing.T) {
	out, err := execute(t, "", "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "built-in bank: ok (20 questions") {
		t.Errorf("output = %q", out)
	}
}

func TestValidate_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	doc := `{"version":1,"items":[
		{"id":1,"title":"A","question":"Q?","choices":["x","y"],"correct_index":5,"explanation":"","tags":[],"level":"intro"},
		{"id":1,"title":"B","question":"Q?","choices":["x","y"],"correct_index":0,"explanation":"","tags":[],"level":"intro"}
	]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "validate", path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(out, "2 problem(s)") {
		t.Errorf("output = %q", out)
	}
}

func TestPlay_RandomRound(t *testing.T) {
	out, err := execute(t, "1\n1\nn\n", "play", "--mode", "random", "--count", "2", "--seed", "9")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "── Question 2/2 ──") {
		t.Errorf("expected a two question round:\n%s", out)
	}
	if !strings.Contains(out, "── Summary: ") {
		t.Errorf("expected a summary:\n%s", out)
	}
	if strings.Contains(out, "Pick a game mode") {
		t.Error("mode prompt should be skipped when --mode is given")
	}
}

func TestPlay_AsksForMode(t *testing.T) {
	out, err := execute(t, "2\n1\nn\n", "play", "--count", "1")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "Pick a game mode") {
		t.Errorf("expected mode prompt:\n%s", out)
	}
	if !strings.Contains(out, "── Question 1/1 ──") {
		t.Errorf("expected a one question round:\n%s", out)
	}
}

func TestPlay_InvalidCount(t *testing.T) {
	if _, err := execute(t, "", "play", "--count", "0"); err == nil {
		t.Fatal("expected an error for --count 0")
	}
}
