package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"retok/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the token cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenCache("retok")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop token cache: %w", err)
		}
		if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "token cache dropped")
		}
		return nil
	},
}
