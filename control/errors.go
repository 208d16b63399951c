package control

import (
	"errors"
	"fmt"
)

// SyntaxError reports malformed control file input. It is fatal to the
// parse that produced it: reading stops at the first syntax error, and the
// partially built document is left available for inspection.
type SyntaxError struct {
	// Context is the position of the offending line.
	Context Context
	// Msg describes the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Context)
}

// Package name validation errors, per Debian Policy 5.6.1.
var (
	// ErrNameTooShort means the name has fewer than two characters.
	ErrNameTooShort = errors.New("package name must be at least two characters long")
	// ErrNameBadPrefix means the name does not start with a lowercase
	// letter or digit.
	ErrNameBadPrefix = errors.New("package name must start with a lowercase letter or digit")
	// ErrNameInvalidChar means the name contains a character outside
	// lowercase letters, digits, '+', '-' and '.'.
	ErrNameInvalidChar = errors.New("package name contains an invalid character")
)
