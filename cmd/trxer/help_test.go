package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage text
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: trxer [flags] <file.trx>...",
		"doctor", "config", "completion",
		"--engine", "--xsltproc", "--asset-path", "--validate", "--emit-xslt",
		envEngine, envXSLTProc, envAssetPath, envValidate, envConfig,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage should contain %q", want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintUsage_CoversFlagSet - Usage lists every registered flag
// ---------------------------------------------------------------------------

func TestPrintUsage_CoversFlagSet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, f := range getFlags() {
		if f.Long == "help" {
			continue
		}
		if !strings.Contains(out, "--"+f.Long) {
			t.Errorf("usage is missing --%s", f.Long)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Per-command help
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args     []string
		wantCode int
		want     string
	}{
		{nil, ExitSuccess, "Usage: trxer [flags]"},
		{[]string{"version"}, ExitSuccess, "Usage: trxer version"},
		{[]string{"help"}, ExitSuccess, "Usage: trxer help [command]"},
		{[]string{"doctor"}, ExitSuccess, "Usage: trxer doctor [--json]"},
		{[]string{"config"}, ExitSuccess, "Usage: trxer config"},
		{[]string{"completion"}, ExitSuccess, "Usage: trxer completion <shell>"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv()
			if code := runHelp(tt.args, env); code != tt.wantCode {
				t.Errorf("runHelp(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output should contain %q, got:\n%s", tt.want, stdout.String())
			}
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := testEnv()
	if code := runHelp([]string{"convert"}, env); code != ExitUsage {
		t.Errorf("runHelp() = %d, want %d", code, ExitUsage)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unknown command: convert") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
