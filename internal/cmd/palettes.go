package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkfield/inkfield/internal/palette"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the available palettes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range palette.Names() {
			p, _ := palette.Lookup(name)
			marker := " "
			if name == palette.DefaultName {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d colors)\n", marker, name, len(p.Colors))
		}
	},
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}
