// Package errors provides sentinel errors for documentation discovery operations.
package errors

import "errors"

var (
	// ErrDocsPathNotFound indicates the configured documentation directory does not exist.
	ErrDocsPathNotFound = errors.New("documentation path not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the docs directory failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrFileReadFailed indicates reading a discovered documentation file failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrRouteCollision indicates two source files map to the same site route.
	ErrRouteCollision = errors.New("route collision detected")
)
