package main

import (
	"github.com/spf13/cobra"

	"github.com/fsmlab/automata/internal/cli"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the machines over HTTP",
	Long: `Starts the HTTP adapter: machine inspection, run execution, stored runs
and Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		verbose, _ := cmd.Flags().GetBool("verbose")

		return cli.Serve(cmd.Context(), cli.ServeOptions{
			Addr:      addr,
			RedisAddr: redisAddr,
			Verbose:   verbose,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis", "", "Redis address for run persistence (defaults to in-memory)")
}
