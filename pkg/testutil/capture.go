// Package testutil provides shared test utilities for creatordash packages.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// captureFile swaps *target for a pipe while fn runs and returns what fn wrote.
//
// The pipe is drained concurrently so output larger than the pipe buffer
// cannot block fn.
func captureFile(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	original := *target
	*target = w
	defer func() { *target = original }()

	fn()

	_ = w.Close()
	return <-done
}

// CaptureStdout captures stdout during the execution of fn and returns the output as a string.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing stdout
//
// Returns:
//   - string: All content written to stdout during fn execution
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stdout, fn)
}

// CaptureStderr captures stderr during the execution of fn and returns the output as a string.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stderr, fn)
}

// CaptureOutput captures both stdout and stderr during the execution of fn.
//
// Returns:
//   - stdout: All content written to stdout during fn execution
//   - stderr: All content written to stderr during fn execution
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	stderr = captureFile(t, &os.Stderr, func() {
		stdout = captureFile(t, &os.Stdout, fn)
	})
	return stdout, stderr
}
