//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs the tests
var Default = Test

// Build compiles the translate-requirements binary
func Build() error {
	return sh.RunV("go", "build", "-o", "translate-requirements", "./cmd/translate-requirements")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/translate-requirements")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("translate-requirements")
}
