// Package transform compiles merged XSLT stylesheets and applies them to TRX
// documents.
//
// Two engines are available:
//
//   - libxslt: links libxslt through cgo (github.com/wamuir/go-xslt). XSLT 1.0
//     with EXSLT extensions and the document() function. This is the default.
//   - xsltproc: runs the xsltproc command-line processor as a child process.
//     Useful when the binary is built without cgo or a system-specific libxslt
//     build must be used.
//
// Both engines report malformed stylesheets as ErrCompile and failures while
// processing an input document as ErrTransform.
package transform
