package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evocover/statespace"
)

var mapsRoot string

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available map directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := statespace.ListMaps(mapsRoot)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	mapsCmd.Flags().StringVar(&mapsRoot, "root", "maps", "maps root directory")
	rootCmd.AddCommand(mapsCmd)
}
