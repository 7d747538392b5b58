// Export command for the floorplan CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/sqlite"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <layout-id>",
	Short: "Export a layout as a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		layout, err := backend.LoadLayout(args[0])
		if err != nil {
			code := exitSysError
			if errors.Is(err, types.ErrLayoutNotFound) {
				code = exitUserError
			}
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(code)
		}

		data, err := sqlite.ExportLayout(layout)
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err := cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}

		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported layout %s to %s\n", args[0], exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}
