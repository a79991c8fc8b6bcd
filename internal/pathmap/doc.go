// Package pathmap maps between source files, build outputs and request URLs.
//
// Build mode maps each source under the source root to a target under the
// output root: documents get a .html extension, assets keep their name.
// Serve mode runs the inverse: a request path is validated, then resolved to
// the source document or asset that would have produced it.
//
// Both directions share one ignore set so a file excluded from the build is
// also invisible to the server.
package pathmap
