// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/cli"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/location"
)

// version is set at build time using -ldflags.
var version = "dev"

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitNotFound   = 3
	exitStorage    = 4
	exitFilesystem = 5
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	dataDir, err := location.NewResolver().DataDir()
	if err != nil {
		return err
	}

	// Create dependency injection container; the store opens when a task command runs
	container := app.New(dataDir)
	defer func() {
		if closeErr := container.Close(); closeErr != nil && err == nil {
			err = &domain.StorageError{Op: "close", Err: closeErr}
		}
	}()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		storageErr    *domain.StorageError
		fsErr         *domain.FilesystemError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &validationErr):
		return exitValidation
	case errors.As(err, &notFoundErr):
		return exitNotFound
	case errors.As(err, &storageErr):
		return exitStorage
	case errors.As(err, &fsErr):
		return exitFilesystem
	default:
		return exitFailure
	}
}
