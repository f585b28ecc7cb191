package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/silt/pkg/core"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [table]",
	Short: "List all entities of a table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		defer service.Close()

		entities, err := service.ListEntities(context.Background(), args[0])
		if err != nil {
			fatal("Failed to list entities", err)
		}

		if listJSON {
			for _, e := range entities {
				data, err := core.EncodeEntity(e)
				if err != nil {
					fatal("Failed to encode entity", err)
				}
				fmt.Fprintln(os.Stdout, string(data))
			}
			return
		}

		for _, e := range entities {
			fmt.Printf("%s (%d fields)\n", e.Key(), e.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output JSON wire forms, one per line")
}
