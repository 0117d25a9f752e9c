package diag

// Diagnostic is one finding attached to a file or input.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	// Pointer is an optional pre-rendered two-line source pointer
	// (line text plus caret), ready for terminal output.
	Pointer string
}
