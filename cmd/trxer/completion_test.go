package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - extractFlagsFromFlagSet: we test that completion metadata is applied to
//   the flags registered for conversion.
// These are acceptable gaps: we test observable behavior, not runtime shell behavior.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_trxer()",
				"complete -o filenames -F _trxer trxer",
				"compgen",
				"doctor",
				"--engine",
				"libxslt xsltproc",
				"*.trx",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef trxer",
				"_arguments",
				"_describe",
				"'doctor:",
				"--asset-path",
				":engine:(libxslt xsltproc)",
				"{-c,--config}",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c trxer",
				"__fish_use_subcommand",
				"-a completion",
				"-l engine",
				"-l config -s c",
				"__fish_complete_suffix .trx",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s) error: %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %d bytes", buf.Len())
	}
}

// ---------------------------------------------------------------------------
// TestGetFlags - Completion metadata
// ---------------------------------------------------------------------------

func TestGetFlags(t *testing.T) {
	t.Parallel()

	byName := map[string]flagDef{}
	for _, f := range getFlags() {
		byName[f.Long] = f
	}

	tests := []struct {
		name     string
		wantType flagType
	}{
		{"engine", flagEnum},
		{"config", flagFile},
		{"emit-xslt", flagFile},
		{"xsltproc", flagFile},
		{"asset-path", flagDir},
		{"validate", flagBool},
		{"quiet", flagBool},
	}

	for _, tt := range tests {
		f, ok := byName[tt.name]
		if !ok {
			t.Errorf("flag --%s missing", tt.name)
			continue
		}
		if f.Type != tt.wantType {
			t.Errorf("--%s type = %d, want %d", tt.name, f.Type, tt.wantType)
		}
	}

	if got := byName["config"].Short; got != "c" {
		t.Errorf("--config short = %q, want c", got)
	}
	if got := byName["engine"].Values; len(got) != 2 {
		t.Errorf("--engine values = %v, want 2 engines", got)
	}
}

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := runCompletion([]string{"bash"}, env); err != nil {
		t.Fatalf("runCompletion() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "_trxer") {
		t.Error("bash script should be written to stdout")
	}
}
