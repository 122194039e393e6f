package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	writeID      string
	writeContent string
	writeTags    []string
	writeStatus  string
	writeStdin   bool
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a note",
	Long: `Create or replace a note with the given ID and content.
With an empty --id a fresh identifier is generated and printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := writeContent
		if writeStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		id, err := svc.SaveNote(context.Background(), writeID, content, writeTags, writeStatus)
		if err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note '%s' saved.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeID, "id", "", "Note ID (filename without extension)")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Note content")
	writeCmd.Flags().StringSliceVar(&writeTags, "tag", nil, "Tags for the note (repeatable)")
	writeCmd.Flags().StringVar(&writeStatus, "status", "", "Lifecycle status for the note")
	writeCmd.Flags().BoolVar(&writeStdin, "stdin", false, "Read content from stdin instead of --content")
}
