package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by keyword",
	Long:  `Search note IDs, tags and bodies for a keyword, ranked by relevance.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		results, err := svc.Search(context.Background(), args[0])
		if err != nil {
			fatal("Search failed", err)
		}

		if searchJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		for _, r := range results {
			fmt.Printf("%s (%d)\n", r.ID, r.Score)
			if r.Snippet != "" {
				fmt.Printf("  %s\n", r.Snippet)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
