// Version command for the floorplan CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/floorplan"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the floorplan version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "floorplan v%s\n", floorplan.Version)
		return nil
	},
}
