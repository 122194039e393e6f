package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/humuslab/humus/pkg/core"
)

var (
	listJSON    bool
	listPattern string
	filterTag   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes in the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openVault()
		if err != nil {
			fmt.Printf("Error initializing vault: %v\n", err)
			os.Exit(1)
		}

		notes, err := svc.ListNotes(context.Background(), listPattern)
		if err != nil {
			fmt.Printf("Error listing notes: %v\n", err)
			os.Exit(1)
		}

		var filtered []core.Document
		for _, note := range notes {
			if filterTag != "" && !hasTag(note, filterTag) {
				continue
			}
			filtered = append(filtered, note)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		for _, note := range filtered {
			if note.Status != "" {
				fmt.Printf("%s [%s]\n", note.ID, note.Status)
				continue
			}
			fmt.Println(note.ID)
		}
	},
}

func hasTag(note core.Document, tag string) bool {
	for _, t := range note.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listPattern, "pattern", "", "Glob pattern to filter note IDs")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Filter notes by tag")
}
