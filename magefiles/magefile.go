//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build tidies deps then compiles to ./bin/enroll-server.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building server binary...")
	return sh.Run("go", "build", "-o", "bin/enroll-server", "./cmd/server")
}

// Run builds then executes the binary.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server on :8080 ...")
	return sh.Run("./bin/enroll-server")
}

// Dev starts the server via go run with .env loaded.
func Dev() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "err", err)
	}
	fmt.Println(">> Dev mode: go run ./cmd/server ...")
	cmd := exec.Command("go", "run", "./cmd/server")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PORT=8080")
	return cmd.Run()
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy")
	return sh.Run("go", "mod", "tidy")
}

// Test runs the full test suite.
func Test() error {
	fmt.Println(">> go test ./...")
	return sh.RunV("go", "test", "./...")
}

// Lint vets the codebase.
func Lint() error {
	fmt.Println(">> go vet ./...")
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build output and the local database.
func Clean() error {
	fmt.Println(">> Cleaning bin/ and enroll.db")
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("enroll.db")
}

// Install downloads module dependencies.
func Install() error {
	fmt.Println(">> go mod download")
	return sh.Run("go", "mod", "download")
}
