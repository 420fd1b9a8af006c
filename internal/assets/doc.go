// Package assets provides the XSLT template, CSS, JavaScript and schema files
// bundled with the report generator.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── FSLoader          - loads from any fs.FS (the go:embed tree by default)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// NewEmbeddedLoader returns an FSLoader over the files compiled into the
// binary. Those files are always present in a correctly built program, so a
// missing embedded asset is a packaging defect.
//
// FilesystemLoader lets users restyle the report by dropping replacement
// files (for example Trxer.css) into a directory. AssetResolver tries that
// directory first and falls back to the embedded copy when a file is absent.
//
// # Naming
//
// Assets are addressed by filename-style keys such as "Trxer.xslt" or
// "functions.js". Keys are flat: path separators and ".." are rejected.
package assets
