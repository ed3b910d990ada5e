package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layoutcalc",
	Short: "Run the constraint-based layout engine against a Container tree",
	Long:  `layoutcalc decodes a Container tree from JSON or YAML, sizes it against a viewport, and prints the resulting geometry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero — the only os.Exit call in the module.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
