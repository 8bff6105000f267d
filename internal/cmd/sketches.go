package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkfield/inkfield/internal/sketch"
)

var sketchesCmd = &cobra.Command{
	Use:   "sketches",
	Short: "List the available sketches",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sketch.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(sketchesCmd)
}
