// Element command group for the floorplan CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/sqlite"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Inspect and edit the elements of a saved layout",
}

func init() {
	elementCmd.AddCommand(elementAddCmd)
	elementCmd.AddCommand(elementListCmd)
	elementCmd.AddCommand(elementUpdateCmd)
	elementCmd.AddCommand(elementDeleteCmd)
	elementCmd.AddCommand(elementMoveCmd)
}

// loadLayoutOrExit loads the layout for an element subcommand, exiting with
// the proper code on failure.
func loadLayoutOrExit(backend *sqlite.Backend, context, layoutID string) *types.Layout {
	layout, err := backend.LoadLayout(layoutID)
	if err != nil {
		code := exitSysError
		if errors.Is(err, types.ErrLayoutNotFound) {
			code = exitUserError
		}
		fail(code, context, err)
	}
	return layout
}

// saveLayoutOrExit persists the layout, exiting on failure.
func saveLayoutOrExit(backend *sqlite.Backend, context string, layout *types.Layout) {
	if err := backend.SaveLayout(layout); err != nil {
		fail(exitSysError, context, err)
	}
}
