// Package diag collects per-record diagnostics produced while scanning
// classifier output. A malformed data line is never fatal: the scanner
// records a structured diagnostic here and keeps going, and the caller
// decides how (and how much of) the collection to present.
package diag
