// Element move command for the floorplan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/drag"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/history"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/scene"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/snap"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var (
	elementMoveDX        float64
	elementMoveDY        float64
	elementMoveNoSnap    bool
	elementMoveConstrain bool
)

// cliSelection is a single-gesture selection holder for the move command.
type cliSelection struct {
	ids []string
}

func (s *cliSelection) Selected() []string   { return s.ids }
func (s *cliSelection) Replace(ids []string) { s.ids = ids }

// cliSettings supplies snap settings derived from the layout and the
// --no-snap flag.
type cliSettings struct {
	settings snap.Settings
}

func (s *cliSettings) SnapSettings() snap.Settings { return s.settings }

var elementMoveCmd = &cobra.Command{
	Use:   "move <layout-id> <element-id>",
	Short: "Move an element by a delta, with snapping and group rigidity",
	Long: `Move runs a full drag gesture against the layout: a table drags its
chairs, grouped elements move together, the anchor snaps to the grid and to
alignment guides, and overlaps are reported (moves are never blocked).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "element move:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		layout := loadLayoutOrExit(backend, "element move", args[0])
		store := scene.New(layout)
		store.SetRecorder(func(r types.ChangeRecord) {
			_ = backend.AppendChange(r)
		})

		anchor, ok := store.Get(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "element move: %v: %s\n", types.ErrElementNotFound, args[1])
			os.Exit(exitUserError)
		}

		settings := snap.Settings{
			GridSize:       layout.Settings.GridSize,
			SnapToGrid:     layout.Settings.SnapToGrid && !elementMoveNoSnap,
			AlignThreshold: snap.DefaultAlignThreshold,
		}
		if elementMoveNoSnap {
			settings.AlignThreshold = -1
		}

		hist := history.New(store)
		ctrl := drag.New(store, hist, &cliSelection{}, &cliSettings{settings: settings})

		startX, startY := anchor.X, anchor.Y
		ctrl.Start(args[1], drag.PointerEvent{X: startX, Y: startY})
		if !ctrl.Dragging() {
			fmt.Fprintf(os.Stderr, "element move: %s is locked\n", args[1])
			os.Exit(exitUserError)
		}
		ctrl.Move(drag.PointerEvent{
			X:             startX + elementMoveDX,
			Y:             startY + elementMoveDY,
			ConstrainAxis: elementMoveConstrain,
		})
		colliding := ctrl.Colliding()
		guides := ctrl.Guides()
		ctrl.End(drag.PointerEvent{
			X:             startX + elementMoveDX,
			Y:             startY + elementMoveDY,
			ConstrainAxis: elementMoveConstrain,
		})

		saveLayoutOrExit(backend, "element move", layout)

		moved, _ := store.Get(args[1])
		if flagJSON {
			return printJSON(struct {
				Element   *types.Element `json:"element"`
				Colliding bool           `json:"colliding"`
				Guides    []snap.Guide   `json:"guides,omitempty"`
			}{moved, colliding, guides})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "moved %s to %.1f,%.1f\n", moved.ID, moved.X, moved.Y)
		for _, g := range guides {
			axis := "vertical"
			if g.Axis == snap.AxisHorizontal {
				axis = "horizontal"
			}
			fmt.Fprintf(out, "aligned (%s %s at %.1f)\n", g.Kind, axis, g.Position)
		}
		if colliding {
			fmt.Fprintln(out, "warning: element overlaps another element")
		}
		return nil
	},
}

func init() {
	elementMoveCmd.Flags().Float64Var(&elementMoveDX, "dx", 0, "horizontal delta")
	elementMoveCmd.Flags().Float64Var(&elementMoveDY, "dy", 0, "vertical delta")
	elementMoveCmd.Flags().BoolVar(&elementMoveNoSnap, "no-snap", false, "disable grid and alignment snapping")
	elementMoveCmd.Flags().BoolVar(&elementMoveConstrain, "constrain", false, "constrain movement to the dominant axis")
}
