// Package process manages child process groups so an external XSLT
// processor and anything it spawns can be stopped together.
package process
