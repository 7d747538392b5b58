// Element list command for the floorplan CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/geometry"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/scene"
)

var elementListKind string

var elementListCmd = &cobra.Command{
	Use:   "list <layout-id>",
	Short: "List a layout's elements in paint order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "element list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		layout := loadLayoutOrExit(backend, "element list", args[0])
		store := scene.New(layout)

		elements := store.Elements()
		if elementListKind != "" {
			filtered := elements[:0]
			for _, e := range elements {
				if string(e.Kind) == elementListKind {
					filtered = append(filtered, e)
				}
			}
			elements = filtered
		}

		if flagJSON {
			return printJSON(elements)
		}

		collisions := geometry.FindAllCollisions(store.Elements(), geometry.DefaultBuffer)
		colliding := make(map[string]bool, len(collisions)*2)
		for _, p := range collisions {
			colliding[p.A] = true
			colliding[p.B] = true
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tNAME\tPOS\tSIZE\tROT\tFLAGS")
		for _, e := range elements {
			flags := ""
			if e.Locked {
				flags += "L"
			}
			if !e.Visible {
				flags += "H"
			}
			if colliding[e.ID] {
				flags += "!"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f,%.1f\t%.0fx%.0f\t%.0f\t%s\n",
				e.ID, e.Kind, e.Metadata.Name, e.X, e.Y, e.Width, e.Height, e.Rotation, flags)
		}
		return w.Flush()
	},
}

func init() {
	elementListCmd.Flags().StringVar(&elementListKind, "kind", "", "only list elements of this kind")
}
