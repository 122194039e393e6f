package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [id]",
	Short: "Render a note's body to HTML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		html, err := svc.Render(context.Background(), args[0])
		if err != nil {
			fatal("Failed to render note", err)
		}

		fmt.Print(html)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
