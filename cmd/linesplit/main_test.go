package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runWith(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		input    string
		expected string
	}{
		{
			name:     "plain",
			input:    "a\r\nb\n\nc\n",
			expected: "a\nb\n\nc\n",
		},
		{
			name:     "empty input is one empty line",
			input:    "",
			expected: "\n",
		},
		{
			name:     "only terminators",
			input:    "\n\r\n",
			expected: "",
		},
		{
			name:     "numbered",
			args:     []string{"-number", "-no-color", "-width", "2"},
			input:    "a\nb",
			expected: " 1: a\n 2: b\n",
		},
		{
			name:     "skip empty",
			args:     []string{"-skip-empty", "-format", "kv"},
			input:    "a\n\nc",
			expected: "line=1 text=\"a\"\nline=3 text=\"c\"\n",
		},
		{
			name:     "json",
			args:     []string{"-format", "json"},
			input:    "x\r",
			expected: "{\"line\":1,\"text\":\"x\\r\"}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runWith(t, tt.input, tt.args...)
			if code != exitOK {
				t.Fatalf("exit code %d, stderr: %s", code, stderr)
			}
			if stdout != tt.expected {
				t.Errorf("Expected %q but got %q", tt.expected, stdout)
			}
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "xml"},
		{"-log-level", "loud"},
		{"-no-such-flag"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		code, _, _ := runWith(t, "a", args...)
		if code != exitUsage {
			t.Errorf("%v: Expected exit code %d but got %d", args, exitUsage, code)
		}
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linesplit.yaml")
	conf := "format: kv\nskip_empty: true\nlog_level: error\n"
	if err := os.WriteFile(path, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runWith(t, "a\n\nb", "-config", path)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	const expected = "line=1 text=\"a\"\nline=3 text=\"b\"\n"
	if stdout != expected {
		t.Errorf("Expected %q but got %q", expected, stdout)
	}

	// the command line wins
	code, stdout, _ = runWith(t, "a\n\nb", "-config", path, "-format", "plain")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if stdout != "a\nb\n" {
		t.Errorf("Expected %q but got %q", "a\nb\n", stdout)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-no-color"}, strings.NewReader("a\nb"), &stdout, &stderr)
	if code != exitError {
		t.Errorf("Expected exit code %d but got %d", exitError, code)
	}
}
