package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/humuslab/humus"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a humus vault",
	Long:  `Initialize a new Humus vault in the target directory, creating it and the hidden system directory if needed.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := vaultPath()
		if err != nil {
			fatal("Failed to resolve vault path", err)
		}

		_, err = humus.New(path, humus.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		fmt.Println("Initialized empty Humus vault in", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
