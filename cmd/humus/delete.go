package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note from the vault",
	Long:  `Delete permanently removes a note file from the vault. Backups under the system directory are kept.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		svc, err := openVault()
		if err != nil {
			fmt.Printf("Error initializing vault: %v\n", err)
			os.Exit(1)
		}

		if err := svc.DeleteNote(context.Background(), id); err != nil {
			fmt.Printf("Error deleting note: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Note deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
