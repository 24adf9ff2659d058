// Update command rewrites a department's attributes.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	updateName     string
	updateLocation string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a department's name and location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid id %q (expected integer)\n", args[0])
			os.Exit(exitUserError)
		}

		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("location") {
			fmt.Fprintln(os.Stderr, "update: at least one of --name or --location is required")
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		depts, err := backend.Departments()
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
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

		if cmd.Flags().Changed("name") {
			d.Name = updateName
		}
		if cmd.Flags().Changed("location") {
			d.Location = updateLocation
		}

		if err := depts.Update(d); err != nil {
			fmt.Fprintln(os.Stderr, "update department:", err)
			os.Exit(exitSysError)
		}

		return printDepartment(d)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new department name")
	updateCmd.Flags().StringVar(&updateLocation, "location", "", "new department location")
}
