// Package trxer converts Visual Studio test results (TRX files) into
// self-contained HTML reports.
//
// # Quick Start
//
// Create a converter, convert a file, and close when done:
//
//	conv, err := trxer.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	out, err := conv.ConvertFile(ctx, "results.trx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("report written to", out) // results.trx.html
//
// # Conversion Pipeline
//
// The report template is prepared once per Converter:
//
//  1. The bundled XSLT template (Trxer.xslt) is loaded and parsed
//  2. Every <link href> is replaced by a <style> holding the referenced CSS
//  3. The first <script src> receives the referenced JavaScript inline
//  4. The merged stylesheet is compiled by the selected XSLT engine
//
// Each input is then transformed and written beside itself with ".html"
// appended, so the report needs no external files.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := trxer.NewConverter(
//	    trxer.WithEngine("xsltproc"),
//	    trxer.WithAssetPath("/path/to/custom/assets"),
//	    trxer.WithValidation(true),
//	    trxer.WithProgress(os.Stdout),
//	)
//
// # Engines
//
// Two XSLT 1.0 engines are available: "libxslt" (default, in-process) and
// "xsltproc" (runs the xsltproc command). Both honour context cancellation
// between steps; the xsltproc engine also stops a running child process.
//
// # Error Handling
//
// Errors can be matched with errors.Is:
//
//	if errors.Is(err, trxer.ErrTransform) {
//	    // input missing, unreadable or not well-formed
//	}
//
// Available sentinel errors: ErrResourceNotFound, ErrInvalidAssetPath,
// ErrStructure, ErrCompile, ErrTransform, ErrEngine, ErrWriteOutput.
package trxer
