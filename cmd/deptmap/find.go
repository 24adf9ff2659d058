// Find command retrieves the first department with a matching name.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Retrieve the first department with the given name",
	Long: `Find returns the first department whose name matches exactly, in
storage order. Names are not unique; later matches are not reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "find:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		depts, err := backend.Departments()
		if err != nil {
			fmt.Fprintln(os.Stderr, "find:", err)
			os.Exit(exitSysError)
		}

		d, err := depts.FindByName(name)
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "no department named %q\n", name)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "find department:", err)
			os.Exit(exitSysError)
		}

		return printDepartment(d)
	},
}
