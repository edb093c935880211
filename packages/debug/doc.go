// Package debug provides the diagnostic sink for failed requests.
//
// Reporting is purely observational: a Reporter never alters what the
// client returns or throws. The console reporter prints color-coded
// summaries; Discard drops everything.
package debug
