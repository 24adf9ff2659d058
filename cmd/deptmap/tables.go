// Table lifecycle commands for the deptmap CLI. Both operations are
// idempotent at the storage layer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var createTableCmd = &cobra.Command{
	Use:   "create-table",
	Short: "Create the departments table (no-op if present)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create-table:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		depts, err := backend.Departments()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create-table:", err)
			os.Exit(exitSysError)
		}
		if err := depts.CreateTable(); err != nil {
			fmt.Fprintln(os.Stderr, "create table:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Departments table created")
		return nil
	},
}

var dropTableCmd = &cobra.Command{
	Use:   "drop-table",
	Short: "Drop the departments table (no-op if absent)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "drop-table:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		depts, err := backend.Departments()
		if err != nil {
			fmt.Fprintln(os.Stderr, "drop-table:", err)
			os.Exit(exitSysError)
		}
		if err := depts.DropTable(); err != nil {
			fmt.Fprintln(os.Stderr, "drop table:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Departments table dropped")
		return nil
	},
}
