// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/trxer/go-trxer/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a common CI environment variable is set.
func inCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != "" ||
		os.Getenv("TF_BUILD") != ""
}

// ForEngineUnavailable returns hints when the selected XSLT engine cannot run.
func ForEngineUnavailable(engine string) string {
	if !strings.EqualFold(engine, "xsltproc") {
		return format("available engines: libxslt, xsltproc")
	}

	var hints []string
	if inCI() || IsInContainer() {
		hints = append(hints, "install xsltproc in the image (apt-get install xsltproc)")
	} else {
		hints = append(hints, "install xsltproc or pass --xsltproc /path/to/xsltproc")
	}
	if os.Getenv("TRXER_ENGINE") != "" {
		hints = append(hints, "unset TRXER_ENGINE to use the built-in libxslt engine")
	} else {
		hints = append(hints, "use --engine libxslt for the built-in engine")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "/trxer/") || strings.Contains(p, `\trxer\`) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns a hint for a missing TRX input.
func ForInputNotFound() string {
	return format("pass the path to a .trx file produced by vstest or dotnet test --logger trx")
}

// ForAssetPath returns a hint for invalid asset directory errors.
func ForAssetPath() string {
	return format("--asset-path must be an existing directory; files it lacks fall back to the built-in ones")
}

// ForInvalidInput returns a hint for schema validation failures.
func ForInvalidInput() string {
	return format("expected a TestRun document in the TeamTest/2010 namespace; drop --validate to skip the check")
}

// ForCompile returns a hint for stylesheet compile failures.
// Only custom templates get a hint: a broken built-in template is a packaging bug.
func ForCompile(customAssets bool) string {
	if !customAssets {
		return ""
	}
	return format("check Trxer.xslt in the asset directory, or use --emit-xslt to inspect the merged stylesheet")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
