// Element delete command for the floorplan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/scene"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var elementDeleteCmd = &cobra.Command{
	Use:   "delete <layout-id> <element-id>",
	Short: "Delete an element (child chairs go with their table)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "element delete:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		layout := loadLayoutOrExit(backend, "element delete", args[0])
		store := scene.New(layout)
		store.SetRecorder(func(r types.ChangeRecord) {
			_ = backend.AppendChange(r)
		})

		if err := store.Delete(args[1]); err != nil {
			fmt.Fprintln(os.Stderr, "element delete:", err)
			os.Exit(exitUserError)
		}

		saveLayoutOrExit(backend, "element delete", layout)

		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[1])
		return nil
	},
}
