package main

import (
	"context"
	"fmt"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [table] [id]",
	Short: "Delete an entity",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		defer service.Close()

		key := silt.NewKey(args[0], args[1])
		if err := service.DeleteEntity(context.Background(), key); err != nil {
			fatal("Failed to delete entity", err)
		}
		fmt.Printf("Entity '%s' deleted.\n", key)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
