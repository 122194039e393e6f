package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary [id]",
	Short: "Show a note's section and item counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		summary, err := svc.Summary(context.Background(), args[0])
		if err != nil {
			fatal("Failed to summarize note", err)
		}

		if summaryJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(summary); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Printf("%s: %d sections, %d items\n", summary.ID, len(summary.Sections), summary.Items)
		for _, s := range summary.Sections {
			fmt.Printf("  %s (%d)\n", s.Name, s.Items)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output in JSON format")
}
