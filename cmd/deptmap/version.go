// Version command for the deptmap CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/deptmap/pkg/deptmap"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the deptmap version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("deptmap", deptmap.Version)
	},
}
