// Delete command for the deptmap CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a department by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid id %q (expected integer)\n", args[0])
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		depts, err := backend.Departments()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}

		d, err := depts.FindByID(id)
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "department %d not found\n", id)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "get department:", err)
			os.Exit(exitSysError)
		}

		if err := depts.Delete(d); err != nil {
			fmt.Fprintln(os.Stderr, "delete department:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Deleted department %d\n", id)
		return nil
	},
}
