package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/silt"
	"github.com/aretw0/silt/pkg/core"
	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get [table] [id]",
	Short: "Read an entity",
	Long:  `Read an entity by table and ID. Prints fields line by line, or the JSON wire form with --json.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		defer service.Close()

		entity, err := service.GetEntity(context.Background(), silt.NewKey(args[0], args[1]))
		if err != nil {
			fatal("Failed to read entity", err)
		}

		if getJSON {
			data, err := core.EncodeEntity(entity)
			if err != nil {
				fatal("Failed to encode entity", err)
			}
			fmt.Fprintln(os.Stdout, string(data))
			return
		}

		fmt.Printf("%s\n", entity.Key())
		for _, name := range entity.Names() {
			if entity.IsNull(name) {
				fmt.Printf("  %-20s null\n", name)
				continue
			}
			v, _ := entity.Value(name)
			suffix := ""
			if entity.NoIndex(name) {
				suffix = " (unindexed)"
			}
			fmt.Printf("  %-20s %v%s\n", name, v, suffix)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output the JSON wire form")
}
