// Shared helpers for deptmap CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/deptmap/internal/sqlite"
	"github.com/mesh-intelligence/deptmap/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(cliLogger()))
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// cliLogger returns a console logger when --verbose is set, and a no-op
// logger otherwise.
func cliLogger() zerolog.Logger {
	if !flagVerbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// printDepartment writes one department to stdout, as JSON when --json
// is set and as a one-line summary otherwise.
func printDepartment(d *types.Department) error {
	if flagJSON {
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal department: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Printf("%d\t%s\t%s\n", d.ID, d.Name, d.Location)
	return nil
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
