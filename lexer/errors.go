package lexer

import "fmt"

// ScanError reports a single lexical error. The scanner collects these
// instead of aborting at the first one (spec: "all errors are collected").
type ScanError struct {
	Line    int
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

func newScanError(line int, format string, args ...interface{}) *ScanError {
	return &ScanError{Line: line, Message: fmt.Sprintf(format, args...)}
}
