// Create command for the floorplan CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var (
	createName        string
	createDescription string
	createTemplate    string
	createWidth       float64
	createHeight      float64
	createUnit        string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new layout, blank or from a template",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createName == "" {
			fmt.Fprintln(os.Stderr, "create: --name is required")
			os.Exit(exitUserError)
		}

		var layout *types.Layout
		if createTemplate != "" {
			l, err := types.NewLayoutFromTemplate(createName, createTemplate)
			if err != nil {
				fmt.Fprintf(os.Stderr, "create: %v (valid: %s)\n",
					err, strings.Join(types.TemplateNames(), ", "))
				os.Exit(exitUserError)
			}
			layout = l
		} else {
			layout = types.NewLayout(createName)
		}

		layout.Description = createDescription
		if createWidth > 0 {
			layout.Dimensions.Width = createWidth
		}
		if createHeight > 0 {
			layout.Dimensions.Height = createHeight
		}
		if createUnit != "" {
			layout.Dimensions.Unit = createUnit
		}

		// Editor defaults from config.yaml.
		if configGridSize > 0 {
			layout.Settings.GridSize = configGridSize
		}
		layout.Settings.SnapToGrid = configSnapToGrid
		if configCapacity > 0 {
			layout.Settings.DefaultTableCapacity = configCapacity
		}
		types.SanitizeLayout(layout)

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := backend.SaveLayout(layout); err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(layout)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created layout %s (%s)\n", layout.ID, layout.Name)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "layout name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "layout description")
	createCmd.Flags().StringVar(&createTemplate, "template", "", "starter template (banquet, ceremony)")
	createCmd.Flags().Float64Var(&createWidth, "width", 0, "canvas width in layout units")
	createCmd.Flags().Float64Var(&createHeight, "height", 0, "canvas height in layout units")
	createCmd.Flags().StringVar(&createUnit, "unit", "", "dimension unit (m or ft)")
}
