package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	readJSON bool
)

var readCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Read a note",
	Long:  `Read a note by its ID. Outputs raw markdown content by default, or a JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		svc, err := openVault()
		if err != nil {
			fmt.Printf("Error initializing vault: %v\n", err)
			os.Exit(1)
		}

		note, err := svc.GetNote(context.Background(), id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading note: %v\n", err)
			os.Exit(1)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		// Default: Print Content
		fmt.Print(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
}
