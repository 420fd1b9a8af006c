package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	trxer "github.com/trxer/go-trxer"
	"github.com/trxer/go-trxer/internal/assets"
	"github.com/trxer/go-trxer/internal/schema"
	"github.com/trxer/go-trxer/internal/transform"
)

// doctorTimeout bounds each engine probe.
const doctorTimeout = 10 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Engine   string     `json:"engine"` // selected by TRXER_ENGINE or default
	LibXSLT  engineInfo `json:"libxslt"`
	XSLTProc engineInfo `json:"xsltproc"`
	Assets   assetsInfo `json:"assets"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// engineInfo holds the result of probing one XSLT engine.
type engineInfo struct {
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
}

// assetsInfo reports on the bundled assets.
type assetsInfo struct {
	TemplateMerged bool `json:"template_merged"`
	SchemaLoaded   bool `json:"schema_loaded"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(context.Background())

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Engine: strings.ToLower(os.Getenv(envEngine)),
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}
	if result.Engine == "" {
		result.Engine = transform.DefaultEngine
	}

	checkLibXSLT(ctx, result)
	checkXSLTProc(ctx, result)
	checkAssets(ctx, result)
	checkEnvironment(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// probeStylesheet is compiled and applied to check an engine end to end.
const probeStylesheet = `<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">` +
	`<xsl:output method="html"/><xsl:template match="/"><p><xsl:value-of select="/probe/@ok"/></p></xsl:template>` +
	`</xsl:stylesheet>`

// probeEngine compiles and runs probeStylesheet with engine.
func probeEngine(ctx context.Context, engine transform.Engine) error {
	ctx, cancel := context.WithTimeout(ctx, doctorTimeout)
	defer cancel()

	sheet, err := engine.Compile(ctx, []byte(probeStylesheet))
	if err != nil {
		return err
	}
	defer sheet.Close()

	out, err := sheet.Transform(ctx, []byte(`<probe ok="yes"/>`))
	if err != nil {
		return err
	}
	if !strings.Contains(string(out), "yes") {
		return fmt.Errorf("unexpected output %q", out)
	}
	return nil
}

// checkLibXSLT verifies the built-in engine.
func checkLibXSLT(ctx context.Context, result *doctorResult) {
	if err := probeEngine(ctx, transform.NewLibXSLT()); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("libxslt engine failed: %v", err))
		return
	}
	result.LibXSLT.Available = true
}

// checkXSLTProc detects the xsltproc command. Missing xsltproc is only an
// error when it is the selected engine.
func checkXSLTProc(ctx context.Context, result *doctorResult) {
	engine := transform.NewXSLTProc(os.Getenv(envXSLTProc), nil)

	report := func(msg string) {
		if result.Engine == transform.EngineXSLTProc {
			result.Errors = append(result.Errors, msg)
		} else {
			result.Warnings = append(result.Warnings, msg+" (only needed for --engine xsltproc)")
		}
	}

	bin, err := engine.LookPath()
	if err != nil {
		report("xsltproc not found in PATH")
		return
	}
	result.XSLTProc.Path = bin

	// xsltproc --version prints to stdout; keep the first line
	runner := &transform.ExecRunner{}
	stdout, _, err := runner.Run(ctx, nil, bin, "--version")
	if err == nil {
		first, _, _ := strings.Cut(strings.TrimSpace(string(stdout)), "\n")
		result.XSLTProc.Version = first
	}

	if err := probeEngine(ctx, engine); err != nil {
		report(fmt.Sprintf("xsltproc at %s failed: %v", bin, err))
		return
	}
	result.XSLTProc.Available = true
}

// checkAssets verifies the bundled template merges and the schema compiles.
func checkAssets(ctx context.Context, result *doctorResult) {
	conv, err := trxer.NewConverter(trxer.WithEngine(transform.EngineLibXSLT))
	if err == nil {
		defer conv.Close()
		_, err = conv.MergedStylesheet(ctx)
	}
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("bundled template: %v", err))
	} else {
		result.Assets.TemplateMerged = true
	}

	if _, err := schema.NewBundledValidator(assets.NewEmbeddedLoader()); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("bundled schema: %v (--validate unavailable)", err))
	} else {
		result.Assets.SchemaLoaded = true
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TF_BUILD"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv(envContainer) == "1" {
		return true, envContainer + "=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used by the xsltproc engine.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "trxer-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Temp directory not writable: %s (needed by xsltproc engine)", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "trxer doctor")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Engines (selected: %s)\n", r.Engine)
	if r.LibXSLT.Available {
		fmt.Fprintln(w, "  [OK] libxslt: built in")
	} else {
		fmt.Fprintln(w, "  [ERROR] libxslt: not working")
	}
	switch {
	case r.XSLTProc.Available && r.XSLTProc.Version != "":
		fmt.Fprintf(w, "  [OK] xsltproc: %s (%s)\n", r.XSLTProc.Path, r.XSLTProc.Version)
	case r.XSLTProc.Available:
		fmt.Fprintf(w, "  [OK] xsltproc: %s\n", r.XSLTProc.Path)
	default:
		fmt.Fprintln(w, "  [--] xsltproc: not available")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Assets")
	if r.Assets.TemplateMerged {
		fmt.Fprintln(w, "  [OK] Template: merged")
	} else {
		fmt.Fprintln(w, "  [ERROR] Template: cannot be merged")
	}
	if r.Assets.SchemaLoaded {
		fmt.Fprintln(w, "  [OK] Schema: loaded")
	} else {
		fmt.Fprintln(w, "  [WARN] Schema: not loaded")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [WARN] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
