package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestStrengthCmd_Text(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		contains []string
	}{
		{
			name:     "argument",
			args:     []string{"strength", "Abcdef1!"},
			contains: []string{"Strength: STRONG (score 10, green.500)", "100%"},
		},
		{
			name:     "stdin first line",
			stdin:    "Abcdef\nignored\n",
			args:     []string{"strength"},
			contains: []string{"Strength: FAIR (score 4, orange.500)", "[x] At least 6 characters", "[ ] A number (0-9)"},
		},
		{
			name:     "stdin crlf",
			stdin:    "abcdef\r\n",
			args:     []string{"strength"},
			contains: []string{"Strength: WEAK (score 2, red.500)"},
		},
		{
			name:     "empty stdin",
			args:     []string{"strength"},
			contains: []string{"Strength: WEAK (score 0, red.500)", "  0%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestStrengthCmd_JSON(t *testing.T) {
	for _, args := range [][]string{
		{"strength", "--json", "aaaaaaaaaaaaaaaa"},
		{"--format", "json", "strength", "aaaaaaaaaaaaaaaa"},
	} {
		out, err := execute(t, "", args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", args, err)
		}

		var resp dto.PasswordStrengthResponse
		if err := json.Unmarshal([]byte(out), &resp); err != nil {
			t.Fatalf("%v: invalid json %q: %v", args, out, err)
		}
		if resp.Score != 5 || resp.Level != "good" || resp.ProgressPercent != 50 {
			t.Errorf("%v: got %+v", args, resp)
		}
		if !resp.Checks.MinLength || resp.Checks.HasNumber {
			t.Errorf("%v: unexpected checks %+v", args, resp.Checks)
		}
	}
}

func TestStrengthCmd_YAML(t *testing.T) {
	out, err := execute(t, "", "-f", "yaml", "strength", "A1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp dto.PasswordStrengthResponse
	if err := yaml.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid yaml %q: %v", out, err)
	}
	if resp.Score != 6 || resp.Level != "good" || resp.Color != "yellow.500" {
		t.Errorf("got %+v", resp)
	}
	if !strings.Contains(out, "progress_percent: 60") {
		t.Errorf("expected snake case key in:\n%s", out)
	}
	if len(resp.Requirements) != 4 || resp.Requirements[0].Key != "minLength" || resp.Requirements[0].Met {
		t.Errorf("unexpected requirements %+v", resp.Requirements)
	}
}

func TestStrengthCmd_Check(t *testing.T) {
	if _, err := execute(t, "", "strength", "--check", "abc"); !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("expected ErrBelowMinimum, got %v", err)
	}
	if _, err := execute(t, "", "strength", "--check", "abcdef"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStrengthCmd_TooManyArgs(t *testing.T) {
	if _, err := execute(t, "", "strength", "a", "b"); err == nil {
		t.Error("expected an error for two arguments")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "pitmydoro dev (none)") {
		t.Errorf("unexpected version output %q", out)
	}
}
