// Delete command for the floorplan CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <layout-id>",
	Short: "Delete a saved layout and its change log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := backend.DeleteLayout(args[0]); err != nil {
			code := exitSysError
			if errors.Is(err, types.ErrLayoutNotFound) {
				code = exitUserError
			}
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(code)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted layout %s\n", args[0])
		return nil
	},
}
