// List command for the floorplan CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts, most recently saved first",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		summaries, err := backend.ListLayouts()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(summaries)
		}

		if len(summaries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no layouts")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSAVED")
		for _, s := range summaries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.SavedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}
