//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "codeshift"

// Build compiles the codeshift binary.
func Build() error {
	fmt.Println("Building", binary, "...")
	return sh.RunV("go", "build", "-o", binary, "./cmd/codeshift")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", "./cmd/codeshift")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binary)
}
