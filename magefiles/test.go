//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// Unit runs the package unit tests.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "./pkg/...", "./internal/...", "./cmd/...")
}

// Integration runs the end-to-end editor tests.
func (Test) Integration() error {
	return sh.RunV(binGo, "test", "./tests/integration/...")
}

// All runs every test in the module with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover runs all tests and writes a coverage profile to coverage.out.
func (Test) Cover() error {
	return sh.RunV(binGo, "test", "-coverprofile=coverage.out", "./...")
}
