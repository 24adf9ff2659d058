// Snapshot export/import commands for the deptmap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export all departments to a JSONL snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		mapper, err := backend.Mapper()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		manifest, err := mapper.Export(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "export snapshot:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Exported %d departments (snapshot %s)\n", manifest.Departments, manifest.SnapshotID)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import departments from a JSONL snapshot",
	Long: `Import loads departments.jsonl from the given directory. Records keep
their exported IDs; rows that already exist are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		mapper, err := backend.Mapper()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		// The snapshot may be restored into an empty data dir.
		if err := mapper.CreateTable(); err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		n, err := mapper.Import(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "import snapshot:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Imported %d departments\n", n)
		return nil
	},
}
