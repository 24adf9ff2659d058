// Create command for the deptmap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createName     string
	createLocation string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new department",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		depts, err := backend.Departments()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}

		d, err := depts.Create(createName, createLocation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create department: %s\n", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printDepartment(d)
		}
		fmt.Printf("Created department %d: %s (%s)\n", d.ID, d.Name, d.Location)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "department name (required)")
	createCmd.Flags().StringVar(&createLocation, "location", "", "department location")

	createCmd.MarkFlagRequired("name")
}
