package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/humuslab/humus"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Read or edit a single section of a note",
}

var sectionReadCmd = &cobra.Command{
	Use:   "read [id] [section]",
	Short: "Print a section's content",
	Long: `Print the content of one section. With only an ID, lists the note's
section names instead.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		ctx := context.Background()

		if len(args) == 1 {
			sections, err := svc.Sections(ctx, args[0])
			if err != nil {
				fatal("Failed to read note", err)
			}
			for _, s := range sections {
				fmt.Println(s.Name)
			}
			return
		}

		section, err := svc.ReadSection(ctx, args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading section: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(section.Content)
	},
}

var sectionAppendCmd = &cobra.Command{
	Use:   "append [id] [section] [content]",
	Short: "Append content to a section",
	Long: `Append content to a named section, separated from what is already
there by a blank line. A missing section is created at level 2.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runSectionUpdate(args[0], args[1], args[2], humus.ModeAppend)
	},
}

var sectionReplaceCmd = &cobra.Command{
	Use:   "replace [id] [section] [content]",
	Short: "Replace a section's content",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runSectionUpdate(args[0], args[1], args[2], humus.ModeReplace)
	},
}

func runSectionUpdate(id, name, content string, mode humus.UpdateMode) {
	svc, err := openVault()
	if err != nil {
		fatal("Failed to initialize vault", err)
	}

	if err := svc.UpdateSection(context.Background(), id, name, content, mode); err != nil {
		fatal("Failed to update section", err)
	}

	fmt.Printf("Section '%s' of '%s' updated.\n", name, id)
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionReadCmd)
	sectionCmd.AddCommand(sectionAppendCmd)
	sectionCmd.AddCommand(sectionReplaceCmd)
}
