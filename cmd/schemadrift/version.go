// Version command for the schemadrift CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schemadrift/pkg/schemadrift"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the schemadrift version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("schemadrift", schemadrift.Version)
	},
}
