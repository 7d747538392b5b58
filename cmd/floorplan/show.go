// Show command for the floorplan CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <layout-id>",
	Short: "Show a saved layout and its elements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		layout, err := backend.LoadLayout(args[0])
		if err != nil {
			code := exitSysError
			if errors.Is(err, types.ErrLayoutNotFound) {
				code = exitUserError
			}
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(code)
		}

		if flagJSON {
			return printJSON(layout)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", layout.Name, layout.ID)
		if layout.Description != "" {
			fmt.Fprintln(out, layout.Description)
		}
		fmt.Fprintf(out, "canvas: %.0fx%.0f %s, grid %.0f (snap %v), %d elements\n",
			layout.Dimensions.Width, layout.Dimensions.Height, layout.Dimensions.Unit,
			layout.Settings.GridSize, layout.Settings.SnapToGrid, len(layout.Elements))

		if len(layout.ElementOrder) == 0 {
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tNAME\tPOS\tSIZE\tZ")
		for _, id := range layout.ElementOrder {
			e := layout.Elements[id]
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f,%.1f\t%.0fx%.0f\t%d\n",
				e.ID, e.Kind, e.Metadata.Name, e.X, e.Y, e.Width, e.Height, e.ZIndex)
		}
		return w.Flush()
	},
}
