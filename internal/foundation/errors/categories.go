package errors

import "maps"

// ErrorCategory decides how an error is presented and which exit code it maps to.
type ErrorCategory string

const (
	// CategoryConfig covers defects in the site configuration, including
	// navigation entries that do not resolve.
	CategoryConfig     ErrorCategory = "config"
	CategoryDocs       ErrorCategory = "docs"
	CategoryFileSystem ErrorCategory = "filesystem"
	// CategoryBuild covers failures of the external site generator.
	CategoryBuild    ErrorCategory = "build"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity selects the log level used when the error is reported.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal" // The command cannot continue
	SeverityError   ErrorSeverity = "error"
	SeverityWarning ErrorSeverity = "warning"
)

// ErrorContext holds the entry an error is about, such as a page path or
// the section trail leading to it.
type ErrorContext map[string]any

func (c ErrorContext) with(key string, value any) ErrorContext {
	out := make(ErrorContext, len(c)+1)
	maps.Copy(out, c)
	out[key] = value
	return out
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	value, ok := c[key]
	return value, ok
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	value, ok := c[key].(string)
	return value, ok
}
