package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect and verify table schemas",
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List declared tables and their properties",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		registry := loadRegistry()
		for _, name := range registry.Names() {
			table, _ := registry.Table(name)
			fmt.Printf("%s (%d properties)\n", name, table.Len())
			for _, p := range table.Properties() {
				fmt.Printf("  %-20s %s\n", p.Name(), p.Kind())
			}
		}
	},
}

var schemaCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that all schema files parse",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		registry := loadRegistry()
		names := registry.Names()
		if len(names) == 0 {
			fmt.Fprintf(os.Stderr, "No schema files found under %s\n", schemaDir)
			os.Exit(1)
		}
		fmt.Printf("OK: %d table(s) loaded\n", len(names))
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaCheckCmd)
}
