//go:build mage

// Package main provides build targets for melib using Mage.
//
// Usage:
//
//	mage test     Run all tests
//	mage cover    Run tests with coverage, writing coverage.out
//	mage lint     Run go vet and golangci-lint
//	mage tidy     Tidy go.mod
//	mage clean    Remove coverage output and the workbook cache
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	coverProfile = "coverage.out"
)

// Default target when mage is run without arguments.
var Default = Test

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests with coverage and prints the per-function summary.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Lint runs go vet, then golangci-lint.
func Lint() error {
	mg.Deps(Vet)
	return sh.RunV("golangci-lint", "run", "./...")
}

// Tidy runs go mod tidy.
func Tidy() error {
	return sh.RunV(binGo, "mod", "tidy")
}

// Clean removes coverage output and the default workbook cache.
func Clean() error {
	if err := sh.Rm(coverProfile); err != nil {
		return err
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil
	}
	cache := filepath.Join(dir, "melib")
	fmt.Println("removing", cache)
	return os.RemoveAll(cache)
}
