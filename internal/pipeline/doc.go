// Package pipeline prepares the bundled XSLT report template for compilation.
//
// The template is an XSLT stylesheet whose literal HTML output references
// external presentation assets:
//
//	<link rel="stylesheet" href="Trxer.css"/>
//	<script src="functions.js"></script>
//
// A report must be a single self-contained file, so before the stylesheet is
// compiled every <link> is replaced by a <style> element holding the CSS text,
// and the <script> element loses its src attribute in favour of the inline
// JavaScript. The stylesheet is handled as an etree DOM; no string splicing is
// done on the XSLT source.
//
// Compilation and execution of the merged stylesheet live in package
// transform.
package pipeline
