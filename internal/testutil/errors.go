// Package testutil provides testing utilities for docket.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockDiskFull indicates a mock disk-full write failure (used in tests).
	ErrMockDiskFull = errors.New("disk full")

	// ErrMockReadFailed indicates a mock read failure (used in tests).
	ErrMockReadFailed = errors.New("read failed")

	// ErrMockConfirmFailed indicates a mock confirmation prompt failure (used in tests).
	ErrMockConfirmFailed = errors.New("confirm failed")

	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")
)
