package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/humuslab/humus/pkg/markdown"
)

var patchSets []string

var patchCmd = &cobra.Command{
	Use:   "patch [id] [section] [item]",
	Short: "Patch an item's bold-bullet fields",
	Long: `Rewrite "- **Field**: value" bullets of one item in place. Each --set
takes "Field=value"; fields the item does not have yet are inserted.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		patches := make([]markdown.FieldPatch, 0, len(patchSets))
		for _, set := range patchSets {
			field, value, ok := strings.Cut(set, "=")
			if !ok {
				fatal("Invalid --set", fmt.Errorf("expected Field=value, got %q", set))
			}
			patches = append(patches, markdown.FieldPatch{Field: field, Value: value})
		}

		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		id, section, item := args[0], args[1], args[2]
		if err := svc.PatchItemFields(context.Background(), id, section, item, patches); err != nil {
			fatal("Failed to patch item", err)
		}

		fmt.Printf("Patched '%s' in '%s'.\n", item, section)
	},
}

func init() {
	rootCmd.AddCommand(patchCmd)
	patchCmd.Flags().StringArrayVar(&patchSets, "set", nil, "Field=value pair to write (repeatable)")
	patchCmd.MarkFlagRequired("set")
}
