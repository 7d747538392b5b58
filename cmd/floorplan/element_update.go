// Element update command for the floorplan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/scene"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var (
	elementUpdateX        float64
	elementUpdateY        float64
	elementUpdateWidth    float64
	elementUpdateHeight   float64
	elementUpdateRotation float64
	elementUpdateZIndex   int
	elementUpdateName     string
	elementUpdateColor    string
	elementUpdateCapacity int
	elementUpdateGroup    string
	elementUpdateLocked   bool
	elementUpdateHidden   bool
)

var elementUpdateCmd = &cobra.Command{
	Use:   "update <layout-id> <element-id>",
	Short: "Update fields of an element",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "element update:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		layout := loadLayoutOrExit(backend, "element update", args[0])
		store := scene.New(layout)
		store.SetRecorder(func(r types.ChangeRecord) {
			_ = backend.AppendChange(r)
		})

		// Only flags the caller set become patch fields.
		var patch scene.Patch
		set := cmd.Flags().Changed
		if set("x") {
			patch.X = &elementUpdateX
		}
		if set("y") {
			patch.Y = &elementUpdateY
		}
		if set("width") {
			patch.Width = &elementUpdateWidth
		}
		if set("height") {
			patch.Height = &elementUpdateHeight
		}
		if set("rotation") {
			patch.Rotation = &elementUpdateRotation
		}
		if set("z-index") {
			patch.ZIndex = &elementUpdateZIndex
		}
		if set("name") {
			patch.Name = &elementUpdateName
		}
		if set("color") {
			patch.Color = &elementUpdateColor
		}
		if set("capacity") {
			patch.Capacity = &elementUpdateCapacity
		}
		if set("group") {
			patch.GroupID = &elementUpdateGroup
		}
		if set("locked") {
			patch.Locked = &elementUpdateLocked
		}
		if set("hidden") {
			visible := !elementUpdateHidden
			patch.Visible = &visible
		}

		updated, err := store.Update(args[1], patch)
		if err != nil {
			fmt.Fprintln(os.Stderr, "element update:", err)
			os.Exit(exitUserError)
		}

		saveLayoutOrExit(backend, "element update", layout)

		if flagJSON {
			return printJSON(updated)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", updated.ID)
		return nil
	},
}

func init() {
	elementUpdateCmd.Flags().Float64Var(&elementUpdateX, "x", 0, "x position")
	elementUpdateCmd.Flags().Float64Var(&elementUpdateY, "y", 0, "y position")
	elementUpdateCmd.Flags().Float64Var(&elementUpdateWidth, "width", 0, "width")
	elementUpdateCmd.Flags().Float64Var(&elementUpdateHeight, "height", 0, "height")
	elementUpdateCmd.Flags().Float64Var(&elementUpdateRotation, "rotation", 0, "rotation in degrees")
	elementUpdateCmd.Flags().IntVar(&elementUpdateZIndex, "z-index", 0, "paint order index")
	elementUpdateCmd.Flags().StringVar(&elementUpdateName, "name", "", "display name")
	elementUpdateCmd.Flags().StringVar(&elementUpdateColor, "color", "", "display color")
	elementUpdateCmd.Flags().IntVar(&elementUpdateCapacity, "capacity", 0, "seat capacity")
	elementUpdateCmd.Flags().StringVar(&elementUpdateGroup, "group", "", "group id (empty clears)")
	elementUpdateCmd.Flags().BoolVar(&elementUpdateLocked, "locked", false, "lock the element against drags")
	elementUpdateCmd.Flags().BoolVar(&elementUpdateHidden, "hidden", false, "hide the element")
}
