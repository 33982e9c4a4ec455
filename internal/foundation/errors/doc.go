// Package errors provides the classified errors used across sitenav.
//
// A ClassifiedError carries a category, a severity and a small context map
// naming the offending entry:
//
//	err := errors.ConfigError("page path does not resolve to a document").
//		WithContext("path", "/missing/page/").
//		WithContext("section", "Fundamentals").
//		Build()
//
// The CLI maps categories to exit codes and prints the context so the
// entry can be found in the configuration file.
package errors
