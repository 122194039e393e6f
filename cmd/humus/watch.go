package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault for external changes",
	Long: `Watch prints a line for every note created, modified or deleted by
another process, until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openVault()
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		fmt.Println("Watching vault (Ctrl+C to stop)...")
		for event := range events {
			stamp := time.Unix(event.Timestamp, 0).Format(time.TimeOnly)
			fmt.Printf("%s %-6s %s\n", stamp, event.Type, event.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Glob pattern to filter watched note IDs")
}
