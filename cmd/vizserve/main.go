// Command vizserve serves recorded puzzle visualizations to the web
// player over a read-only HTTP API keyed by (year, day, id).
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagAddr string
	flagData string
)

var rootCmd = &cobra.Command{
	Use:          "vizserve",
	Short:        "serve recorded puzzle visualizations",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("serving visualizations", "addr", flagAddr, "data", flagData)
		return newRouter(flagData).Run(flagAddr)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagAddr, "addr", ":8099", "listen address")
	rootCmd.Flags().StringVar(&flagData, "data", "vizdata", "directory holding recorded visualizations")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("vizserve failed", "error", err)
		os.Exit(1)
	}
}
