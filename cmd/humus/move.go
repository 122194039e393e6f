package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var moveReason string

var moveCmd = &cobra.Command{
	Use:   "move [id] [from-section] [to-section] [item]",
	Short: "Move an item between sections",
	Long: `Move a "### item" block from one section of a note to another. With
--reason, a provenance comment is appended below the item.`,
	Args: cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		id, from, to, item := args[0], args[1], args[2], args[3]
		if err := svc.MoveItem(context.Background(), id, from, to, item, moveReason); err != nil {
			fatal("Failed to move item", err)
		}

		fmt.Printf("Moved '%s' from '%s' to '%s'.\n", item, from, to)
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVarP(&moveReason, "reason", "r", "", "Why the item moved (recorded in the note)")
}
