package diag

import "fmt"

// Diagnostic describes one recoverable problem found in an input stream.
// Line is 1-based and refers to the data line within the scanned file;
// zero means the diagnostic concerns the stream as a whole.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Line     int
	Field    string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
	}
	if d.Field != "" {
		return fmt.Sprintf("%s[%s] line %d (%s): %s", d.Severity, d.Code, d.Line, d.Field, d.Message)
	}
	return fmt.Sprintf("%s[%s] line %d: %s", d.Severity, d.Code, d.Line, d.Message)
}
